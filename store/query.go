package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cockroachdb/errors"
)

// Node is a stored node with its properties.
type Node struct {
	ID    string
	Label string
	Props map[string]string
}

// Edge is a stored edge.
type Edge struct {
	ID    string
	Label string
	Dir   string
	Out   string
	In    string
}

// Stats counts stored rows per label.
type Stats struct {
	Nodes        int
	Edges        int
	NodesByLabel map[string]int
	EdgesByLabel map[string]int
}

// GetNode returns the node with id, or ErrNotFound.
func (s *Store) GetNode(ctx context.Context, id string) (*Node, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	n := &Node{ID: id, Props: make(map[string]string)}
	err = db.QueryRowContext(ctx, selectNode, id).Scan(&n.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNotFound, "node %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get node %s", id)
	}

	rows, err := db.QueryContext(ctx, selectProps, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get node %s properties", id)
	}
	defer rows.Close()
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, errors.Wrap(err, "scan property")
		}
		n.Props[name] = value
	}
	return n, errors.Wrap(rows.Err(), "iterate properties")
}

// GetEdge returns the edge with id, or ErrNotFound.
func (s *Store) GetEdge(ctx context.Context, id string) (*Edge, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	e := &Edge{ID: id}
	err = db.QueryRowContext(ctx, selectEdge, id).Scan(&e.Label, &e.Dir, &e.Out, &e.In)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNotFound, "edge %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get edge %s", id)
	}
	return e, nil
}

// EdgeIDsByLabel returns the ids of label's edges in ingestion order.
func (s *Store) EdgeIDsByLabel(ctx context.Context, label string) ([]string, error) {
	return s.queryStrings(ctx, selectEdgeIDsByLabel, label)
}

// SourcesByLabel returns the distinct sources of label's edges, in order of
// first appearance.
func (s *Store) SourcesByLabel(ctx context.Context, label string) ([]string, error) {
	return s.queryStrings(ctx, selectSourcesByLabel, label)
}

// TargetsByLabel returns the distinct targets of label's edges, in order of
// first appearance.
func (s *Store) TargetsByLabel(ctx context.Context, label string) ([]string, error) {
	return s.queryStrings(ctx, selectTargetsByLabel, label)
}

// NodesByProperty returns the ids of nodes whose property name equals value,
// compared case-insensitively.
func (s *Store) NodesByProperty(ctx context.Context, name, value string) ([]string, error) {
	return s.queryStrings(ctx, selectNodesByProp, name, strings.ToLower(value))
}

// Stats counts the stored nodes and edges.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}
	var err error
	if st.NodesByLabel, st.Nodes, err = s.countByLabel(ctx, countNodesByLabel); err != nil {
		return nil, err
	}
	if st.EdgesByLabel, st.Edges, err = s.countByLabel(ctx, countEdgesByLabel); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Store) countByLabel(ctx context.Context, query string) (map[string]int, int, error) {
	db, err := s.handle()
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count by label")
	}
	defer rows.Close()

	counts, total := make(map[string]int), 0
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, 0, errors.Wrap(err, "scan count")
		}
		counts[label] = n
		total += n
	}
	return counts, total, errors.Wrap(rows.Err(), "iterate counts")
}

func (s *Store) queryStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, errors.Wrap(err, "scan")
		}
		out = append(out, v)
	}
	return out, errors.Wrap(rows.Err(), "iterate")
}
