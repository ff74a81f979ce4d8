package pgdf

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Delimiter separates columns on every PGDF line.
const Delimiter = "|"

// Reserved node columns; every node schema starts with them.
const (
	ColID    = "@id"
	ColLabel = "@label"
)

// Edge header columns.
const (
	ColDir = "@dir"
	ColOut = "@out"
	ColIn  = "@in"
)

// DirDirected is the only direction this model emits.
const DirDirected = "T"

// EdgeHeader is the single global header of the edge file.
var EdgeHeader = Schema{ColID, ColLabel, ColDir, ColOut, ColIn}

// Kind enumerates entity kinds.
type Kind int

const (
	// Person entities carry the "P" id tag.
	Person Kind = iota
	// Organization entities carry the "O" id tag.
	Organization
)

// Kinds lists every kind in emission order.
var Kinds = []Kind{Person, Organization}

// Tag returns the single-letter id prefix.
func (k Kind) Tag() string {
	switch k {
	case Person:
		return "P"
	case Organization:
		return "O"
	}
	return "?"
}

// Label returns the @label value.
func (k Kind) Label() string {
	switch k {
	case Person:
		return "Person"
	case Organization:
		return "Organization"
	}
	return "Unknown"
}

func (k Kind) String() string { return k.Label() }

// KindByLabel resolves an @label value.
func KindByLabel(label string) (Kind, bool) {
	switch label {
	case "Person":
		return Person, true
	case "Organization":
		return Organization, true
	}
	return 0, false
}

// KindByTag resolves an id prefix.
func KindByTag(tag byte) (Kind, bool) {
	switch tag {
	case 'P':
		return Person, true
	case 'O':
		return Organization, true
	}
	return 0, false
}

// Edge labels.
const (
	LabelKnows    = "Knows"
	LabelWorksFor = "Works_for"
	LabelLikes    = "Likes"
)

// EdgeLabels lists every edge label in emission order.
var EdgeLabels = []string{LabelKnows, LabelWorksFor, LabelLikes}

// Schema is an ordered column list.
type Schema []string

// Header renders the header line without the trailing newline.
func (s Schema) Header() string {
	return strings.Join(s, Delimiter)
}

// Index returns the position of col, or -1.
func (s Schema) Index(col string) int {
	for i, c := range s {
		if c == col {
			return i
		}
	}
	return -1
}

// Has reports whether col is part of the schema.
func (s Schema) Has(col string) bool {
	return s.Index(col) >= 0
}

// Validate enforces the node-schema contract: starts with @id,@label, no
// empty, duplicate or delimiter-bearing column names.
func (s Schema) Validate() error {
	if len(s) < 2 || s[0] != ColID || s[1] != ColLabel {
		return errors.Wrapf(ErrBadSchema, "schema %q must start with %s,%s", s.Header(), ColID, ColLabel)
	}
	seen := make(map[string]struct{}, len(s))
	for _, c := range s {
		if c == "" || strings.ContainsAny(c, "|\r\n") {
			return errors.Wrapf(ErrBadSchema, "schema %q: invalid column name %q", s.Header(), c)
		}
		if _, dup := seen[c]; dup {
			return errors.Wrapf(ErrBadSchema, "schema %q: duplicate column %q", s.Header(), c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// Clone returns an independent copy.
func (s Schema) Clone() Schema {
	return append(Schema(nil), s...)
}

// Default schema catalogs and their selection weights.
var (
	DefaultPersonSchemas = []Schema{
		{ColID, ColLabel, "name", "age", "city", "email", "url"},
		{ColID, ColLabel, "name", "birth_year", "city", "profession", "url"},
		{ColID, ColLabel, "name", "age", "city", "phone", "url"},
	}
	DefaultPersonSchemaWeights = []float64{0.5, 0.3, 0.2}

	DefaultOrgSchemas = []Schema{
		{ColID, ColLabel, "name", "type", "city", "website", "founded_year", "url"},
		{ColID, ColLabel, "name", "industry", "hq_city", "website", "url"},
	}
	DefaultOrgSchemaWeights = []float64{0.7, 0.3}
)
