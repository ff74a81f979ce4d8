package store

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// DefaultBatchSize is the number of rows committed per transaction.
const DefaultBatchSize = 10000

// Store is a SQLite-backed graph store.
type Store struct {
	db        *sql.DB
	log       *zap.SugaredLogger
	batchSize int
}

// Option customizes a Store.
type Option func(*Store)

// WithBatchSize sets the rows committed per transaction; n <= 0 keeps the default.
func WithBatchSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// Open opens (or creates) the SQLite database at path with WAL, foreign
// keys and a busy timeout, and applies the schema.
// If logger is nil the store operates silently.
func Open(path string, logger *zap.SugaredLogger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	logger.Debugw("opening graph store", "path", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	// PRAGMAs are per connection; one connection keeps them in force.
	db.SetMaxOpenConns(1)

	// WAL for concurrent reads during ingestion
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to enable WAL mode")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to enable foreign keys")
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to set busy timeout")
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "failed to apply schema")
		}
	}

	s := New(db, logger, opts...)
	logger.Infow("graph store opened", "path", path, "wal_mode", true, "foreign_keys", true)
	return s, nil
}

// New wraps an already opened database whose schema is in place.
func New(db *sql.DB, logger *zap.SugaredLogger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Store{db: db, log: logger, batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) handle() (*sql.DB, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}
