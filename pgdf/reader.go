package pgdf

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// maxLineSize bounds a single PGDF line.
const maxLineSize = 1 << 20

// NodeRow is one decoded node row. Values align with Header.
type NodeRow struct {
	Line   int
	Header Schema
	Values []string
}

// ID returns the @id value.
func (r NodeRow) ID() string { return r.Get(ColID) }

// Label returns the @label value.
func (r NodeRow) Label() string { return r.Get(ColLabel) }

// Get returns the value of col, or "" when the header lacks it.
func (r NodeRow) Get(col string) string {
	if i := r.Header.Index(col); i >= 0 {
		return r.Values[i]
	}
	return ""
}

// Props returns the non-reserved columns as a map.
func (r NodeRow) Props() map[string]string {
	props := make(map[string]string, len(r.Header))
	for i, c := range r.Header {
		if strings.HasPrefix(c, "@") {
			continue
		}
		props[c] = r.Values[i]
	}
	return props
}

// EdgeRow is one decoded edge row.
type EdgeRow struct {
	Line  int
	ID    string
	Label string
	Dir   string
	Out   string
	In    string
}

// ReadOption customizes ReadNodes and ReadEdges.
type ReadOption func(*readConfig)

type readConfig struct {
	onBadRow func(line int, err error) error
}

// WithBadRowHandler routes format errors (ErrNoHeader, ErrFieldCount,
// ErrBadSchema) to fn instead of stopping the scan. When fn returns nil the
// offending line is skipped and reading continues; rows under a rejected
// header are skipped without further calls. I/O errors and errors from the
// row callback still stop the scan.
func WithBadRowHandler(fn func(line int, err error) error) ReadOption {
	return func(c *readConfig) { c.onBadRow = fn }
}

func newReadConfig(opts []ReadOption) readConfig {
	var c readConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// bad reports a format error on line n.
func (c readConfig) bad(n int, err error) error {
	if c.onBadRow == nil {
		return err
	}
	return c.onBadRow(n, err)
}

// ReadNodes streams every node row of r into fn. A header line is any line
// starting with '@'; blank lines are skipped. fn errors stop the scan and
// are returned unchanged.
func ReadNodes(r io.Reader, fn func(NodeRow) error, opts ...ReadOption) error {
	cfg := newReadConfig(opts)
	var header Schema
	rejected := false
	return scanLines(r, func(n int, line string) error {
		if strings.HasPrefix(line, "@") {
			header, rejected = Schema(strings.Split(line, Delimiter)), false
			if err := header.Validate(); err != nil {
				header, rejected = nil, true
				return cfg.bad(n, errors.Wrapf(err, "line %d", n))
			}
			return nil
		}
		if header == nil {
			if rejected {
				return nil
			}
			return cfg.bad(n, errors.Wrapf(ErrNoHeader, "line %d", n))
		}
		values := strings.Split(line, Delimiter)
		if len(values) != len(header) {
			return cfg.bad(n, errors.Wrapf(ErrFieldCount, "line %d: got %d fields, header has %d", n, len(values), len(header)))
		}
		return fn(NodeRow{Line: n, Header: header, Values: values})
	})
}

// ReadEdges streams every edge row of r into fn. The header must name @out
// and @in; @dir defaults to "T" when the header omits it.
func ReadEdges(r io.Reader, fn func(EdgeRow) error, opts ...ReadOption) error {
	cfg := newReadConfig(opts)
	var header Schema
	var iID, iLabel, iDir, iOut, iIn int
	rejected := false
	return scanLines(r, func(n int, line string) error {
		if strings.HasPrefix(line, "@") {
			header, rejected = Schema(strings.Split(line, Delimiter)), false
			iID, iLabel, iDir = header.Index(ColID), header.Index(ColLabel), header.Index(ColDir)
			iOut, iIn = header.Index(ColOut), header.Index(ColIn)
			if iOut < 0 || iIn < 0 || iLabel < 0 {
				header, rejected = nil, true
				return cfg.bad(n, errors.Wrapf(ErrBadSchema, "line %d: edge header %q lacks %s/%s/%s", n, line, ColLabel, ColOut, ColIn))
			}
			return nil
		}
		if header == nil {
			if rejected {
				return nil
			}
			return cfg.bad(n, errors.Wrapf(ErrNoHeader, "line %d", n))
		}
		values := strings.Split(line, Delimiter)
		if len(values) != len(header) {
			return cfg.bad(n, errors.Wrapf(ErrFieldCount, "line %d: got %d fields, header has %d", n, len(values), len(header)))
		}
		row := EdgeRow{Line: n, Label: values[iLabel], Dir: DirDirected, Out: values[iOut], In: values[iIn]}
		if iID >= 0 {
			row.ID = values[iID]
		}
		if iDir >= 0 {
			row.Dir = values[iDir]
		}
		return fn(row)
	})
}

// scanLines feeds 1-based numbered, CR-trimmed, non-blank lines to fn.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return errors.Wrap(sc.Err(), "pgdf: scan")
}
