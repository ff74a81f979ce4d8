package pgdf

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// defaultBufferSize keeps syscalls rare when emitting hundreds of thousands
// of short rows.
const defaultBufferSize = 1 << 16

// NodeWriter emits schema blocks: Begin writes a header, WriteRow writes one
// row conforming to the current header.
type NodeWriter struct {
	bw     *bufio.Writer
	schema Schema
	blocks int
	rows   int
}

// NewNodeWriter wraps w with a buffered writer. Call Flush when done.
func NewNodeWriter(w io.Writer) *NodeWriter {
	return &NodeWriter{bw: bufio.NewWriterSize(w, defaultBufferSize)}
}

// Begin validates s and writes its header line, opening a new block.
func (nw *NodeWriter) Begin(s Schema) error {
	if err := s.Validate(); err != nil {
		return err
	}
	nw.schema = s
	nw.blocks++
	return writeLine(nw.bw, s)
}

// WriteRow writes values in header order. len(values) must equal the
// header's column count.
func (nw *NodeWriter) WriteRow(values []string) error {
	if nw.schema == nil {
		return errors.Wrap(ErrNoHeader, "NodeWriter.WriteRow")
	}
	if len(values) != len(nw.schema) {
		return errors.Wrapf(ErrFieldCount, "NodeWriter.WriteRow: got %d values for %d columns", len(values), len(nw.schema))
	}
	if err := checkValues(values); err != nil {
		return err
	}
	nw.rows++
	return writeLine(nw.bw, values)
}

// Blocks reports how many headers were written.
func (nw *NodeWriter) Blocks() int { return nw.blocks }

// Rows reports how many data rows were written.
func (nw *NodeWriter) Rows() int { return nw.rows }

// Flush drains the buffer.
func (nw *NodeWriter) Flush() error {
	return errors.Wrap(nw.bw.Flush(), "NodeWriter.Flush")
}

// EdgeWriter emits the edge header once, then one row per edge.
type EdgeWriter struct {
	bw     *bufio.Writer
	header bool
	rows   int
	line   [5]string
}

// NewEdgeWriter wraps w with a buffered writer. Call Flush when done.
func NewEdgeWriter(w io.Writer) *EdgeWriter {
	return &EdgeWriter{bw: bufio.NewWriterSize(w, defaultBufferSize)}
}

// WriteHeader writes "@id|@label|@dir|@out|@in". It is idempotent.
func (ew *EdgeWriter) WriteHeader() error {
	if ew.header {
		return nil
	}
	ew.header = true
	return writeLine(ew.bw, EdgeHeader)
}

// Write emits one directed edge row, writing the header first if needed.
func (ew *EdgeWriter) Write(id, label, out, in string) error {
	if err := ew.WriteHeader(); err != nil {
		return err
	}
	ew.line = [5]string{id, label, DirDirected, out, in}
	if err := checkValues(ew.line[:]); err != nil {
		return err
	}
	ew.rows++
	return writeLine(ew.bw, ew.line[:])
}

// Rows reports how many edges were written.
func (ew *EdgeWriter) Rows() int { return ew.rows }

// Flush drains the buffer.
func (ew *EdgeWriter) Flush() error {
	return errors.Wrap(ew.bw.Flush(), "EdgeWriter.Flush")
}

// writeLine joins fields with the delimiter and terminates with '\n'.
func writeLine(bw *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := bw.WriteByte('|'); err != nil {
				return errors.Wrap(err, "pgdf: write")
			}
		}
		if _, err := bw.WriteString(f); err != nil {
			return errors.Wrap(err, "pgdf: write")
		}
	}
	return errors.Wrap(bw.WriteByte('\n'), "pgdf: write")
}

func checkValues(values []string) error {
	for i, v := range values {
		if strings.ContainsAny(v, "|\r\n") {
			return errors.Wrapf(ErrBadValue, "field %d: %q", i, v)
		}
	}
	return nil
}
