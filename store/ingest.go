package store

import (
	"context"
	"database/sql"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/katalvlaran/pgdfgen/pgdf"
)

// IngestResult describes one ingest batch.
type IngestResult struct {
	Batch string
	Kind  string
	Rows  int
}

// batcher commits every size rows in a fresh transaction.
type batcher struct {
	db      *sql.DB
	ctx     context.Context
	queries []string
	size    int

	tx    *sql.Tx
	stmts []*sql.Stmt
	rows  int
}

func (b *batcher) begin() error {
	tx, err := b.db.BeginTx(b.ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	b.tx, b.stmts = tx, b.stmts[:0]
	for _, q := range b.queries {
		stmt, err := tx.PrepareContext(b.ctx, q)
		if err != nil {
			_ = tx.Rollback()
			b.tx = nil
			return errors.Wrap(err, "prepare statement")
		}
		b.stmts = append(b.stmts, stmt)
	}
	return nil
}

func (b *batcher) exec(i int, args ...interface{}) error {
	if b.tx == nil {
		if err := b.begin(); err != nil {
			return err
		}
	}
	_, err := b.stmts[i].ExecContext(b.ctx, args...)
	return err
}

// rowDone counts a finished row and commits when the batch is full.
func (b *batcher) rowDone() error {
	b.rows++
	if b.rows%b.size == 0 {
		return b.commit()
	}
	return nil
}

func (b *batcher) commit() error {
	if b.tx == nil {
		return nil
	}
	for _, st := range b.stmts {
		st.Close()
	}
	err := b.tx.Commit()
	b.tx = nil
	return errors.Wrap(err, "commit")
}

func (b *batcher) rollback() {
	if b.tx != nil {
		_ = b.tx.Rollback()
		b.tx = nil
	}
}

// IngestNodes streams node rows from r. Every non-reserved column becomes a
// property; the lower-cased value is indexed for NodesByProperty.
func (s *Store) IngestNodes(ctx context.Context, r io.Reader) (*IngestResult, error) {
	return s.ingest(ctx, "nodes", []string{insertNode, insertProp}, func(b *batcher, batch string) error {
		return pgdf.ReadNodes(r, func(row pgdf.NodeRow) error {
			id := row.ID()
			if err := b.exec(0, id, row.Label(), batch); err != nil {
				return errors.Wrapf(err, "node %s (line %d)", id, row.Line)
			}
			for i, col := range row.Header {
				if strings.HasPrefix(col, "@") {
					continue
				}
				v := row.Values[i]
				if err := b.exec(1, id, col, v, strings.ToLower(v)); err != nil {
					return errors.Wrapf(err, "node %s property %s", id, col)
				}
			}
			return b.rowDone()
		})
	})
}

// IngestEdges streams edge rows from r. Both endpoints must already be
// stored; a dangling reference fails the foreign key check.
func (s *Store) IngestEdges(ctx context.Context, r io.Reader) (*IngestResult, error) {
	return s.ingest(ctx, "edges", []string{insertEdge}, func(b *batcher, batch string) error {
		return pgdf.ReadEdges(r, func(row pgdf.EdgeRow) error {
			if err := b.exec(0, row.ID, row.Label, row.Dir, row.Out, row.In, batch); err != nil {
				return errors.Wrapf(err, "edge %s (line %d)", row.ID, row.Line)
			}
			return b.rowDone()
		})
	})
}

// IngestFiles ingests the node file, then the edge file.
func (s *Store) IngestFiles(ctx context.Context, nodesPath, edgesPath string) ([]*IngestResult, error) {
	var results []*IngestResult
	for _, step := range []struct {
		path string
		fn   func(context.Context, io.Reader) (*IngestResult, error)
	}{
		{nodesPath, s.IngestNodes},
		{edgesPath, s.IngestEdges},
	} {
		f, err := os.Open(step.path)
		if err != nil {
			return results, errors.Wrapf(err, "open %s", step.path)
		}
		res, err := step.fn(ctx, f)
		f.Close()
		if err != nil {
			return results, errors.Wrapf(err, "ingest %s", step.path)
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *Store) ingest(ctx context.Context, kind string, queries []string, fill func(*batcher, string) error) (*IngestResult, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	batch := uuid.NewString()
	started := time.Now().UTC()
	log := s.log.With("batch", batch, "kind", kind)
	log.Infow("ingest started")

	b := &batcher{db: db, ctx: ctx, queries: queries, size: s.batchSize}
	if err := fill(b, batch); err != nil {
		b.rollback()
		log.Errorw("ingest failed", "rows_committed", b.rows/b.size*b.size, "error", err)
		return nil, errors.Wrapf(err, "ingest %s", kind)
	}
	if err := b.commit(); err != nil {
		return nil, errors.Wrapf(err, "ingest %s", kind)
	}
	if _, err := db.ExecContext(ctx, insertIngest, batch, kind, b.rows, started, time.Now().UTC()); err != nil {
		return nil, errors.Wrap(err, "record ingest")
	}

	log.Infow("ingest finished", "rows", b.rows, "elapsed", time.Since(started))
	return &IngestResult{Batch: batch, Kind: kind, Rows: b.rows}, nil
}
