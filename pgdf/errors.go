package pgdf

import "github.com/cockroachdb/errors"

// Sentinel errors for PGDF encoding and decoding.
var (
	// ErrBadSchema indicates a header that violates the schema contract.
	ErrBadSchema = errors.New("pgdf: invalid schema")
	// ErrFieldCount indicates a row whose arity differs from its header.
	ErrFieldCount = errors.New("pgdf: field count mismatch")
	// ErrNoHeader indicates a data row before any header line.
	ErrNoHeader = errors.New("pgdf: row before header")
	// ErrBadValue indicates a value containing the delimiter or a newline.
	ErrBadValue = errors.New("pgdf: value contains delimiter or newline")
)
