// Package verify re-reads a PGDF node/edge pair, loads it into a
// core.Graph and checks the structural guarantees of a generated dataset:
// id shape and uniqueness, kind tag vs label, row arity, the edge header,
// the E1..En id sequence, direction, known labels, dangling references,
// self-loops and Works_for targets. A manifest's counts can be checked too.
// The Result also reports weak connectivity of the loaded graph.
//
// Violations are collected, not returned as errors; Verify only fails on
// I/O problems.
package verify

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/pgdfgen/bfs"
	"github.com/katalvlaran/pgdfgen/core"
	"github.com/katalvlaran/pgdfgen/manifest"
	"github.com/katalvlaran/pgdfgen/pgdf"
)

// Rule names one checked property.
type Rule string

const (
	RuleFormat         Rule = "format"
	RuleIDPattern      Rule = "id_pattern"
	RuleKindLabel      Rule = "kind_label"
	RuleDuplicateID    Rule = "duplicate_id"
	RuleEdgeHeader     Rule = "edge_header"
	RuleEdgeSequence   Rule = "edge_sequence"
	RuleDirection      Rule = "direction"
	RuleEdgeLabel      Rule = "edge_label"
	RuleDangling       Rule = "dangling_reference"
	RuleSelfLoop       Rule = "self_loop"
	RuleEdgeSource     Rule = "edge_source"
	RuleWorksForTarget Rule = "works_for_target"
	RuleManifest       Rule = "manifest"
)

// File names the input a violation was found in.
const (
	FileNodes    = "nodes"
	FileEdges    = "edges"
	FileManifest = "manifest"
)

// DefaultMaxViolations bounds how many violations are kept in a Result.
const DefaultMaxViolations = 100

var nodeID = regexp.MustCompile(`^[PO][1-9][0-9]*$`)

// Violation is one broken property.
type Violation struct {
	Rule   Rule
	File   string
	Line   int
	ID     string
	Detail string
}

func (v Violation) String() string {
	var b strings.Builder
	b.WriteString(string(v.Rule))
	b.WriteString(" ")
	b.WriteString(v.File)
	if v.Line > 0 {
		b.WriteString(":" + strconv.Itoa(v.Line))
	}
	if v.ID != "" {
		b.WriteString(" " + v.ID)
	}
	b.WriteString(": " + v.Detail)
	return b.String()
}

// Result is the outcome of one verification.
type Result struct {
	Graph *core.Graph

	Nodes int
	Edges int
	// VertexCounts and EdgeCounts tally rows per label.
	VertexCounts map[string]int
	EdgeCounts   map[string]int

	// Components is the number of weakly connected components; Largest is
	// the size of the biggest one and Isolated counts single-vertex ones.
	Components int
	Largest    int
	Isolated   int

	// Violations holds at most the configured maximum; Found counts all.
	Violations []Violation
	Found      int
}

// OK reports whether no property was violated.
func (r *Result) OK() bool { return r.Found == 0 }

// Option customizes a verification.
type Option func(*config)

type config struct {
	manifest      *manifest.Manifest
	maxViolations int
	logger        *zap.SugaredLogger
}

// WithManifest also checks the node and edge counts recorded in m.
func WithManifest(m *manifest.Manifest) Option {
	return func(c *config) { c.manifest = m }
}

// WithMaxViolations caps the violations kept in the Result; n <= 0 keeps all.
func WithMaxViolations(n int) Option {
	return func(c *config) { c.maxViolations = n }
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *zap.SugaredLogger) Option {
	if l == nil {
		panic("verify: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// Files verifies the PGDF files at nodesPath and edgesPath.
func Files(nodesPath, edgesPath string, opts ...Option) (*Result, error) {
	nf, err := os.Open(nodesPath)
	if err != nil {
		return nil, errors.Wrapf(err, "verify: open %s", nodesPath)
	}
	defer nf.Close()
	ef, err := os.Open(edgesPath)
	if err != nil {
		return nil, errors.Wrapf(err, "verify: open %s", edgesPath)
	}
	defer ef.Close()
	return Verify(nf, ef, opts...)
}

// Verify checks the node stream and the edge stream.
// Returns an error only when a stream cannot be read.
func Verify(nodes, edges io.Reader, opts ...Option) (*Result, error) {
	cfg := config{maxViolations: DefaultMaxViolations, logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &checker{
		cfg: cfg,
		res: &Result{Graph: core.NewGraph(core.WithLoops(), core.WithMultiEdges())},
	}
	if err := c.loadNodes(nodes); err != nil {
		return nil, err
	}
	if err := c.loadEdges(edges); err != nil {
		return nil, err
	}
	c.res.VertexCounts, c.res.EdgeCounts = c.res.Graph.CountByLabel()
	if err := c.connectivity(); err != nil {
		return nil, err
	}
	if cfg.manifest != nil {
		c.checkManifest(cfg.manifest)
	}

	cfg.logger.Infow("verification finished",
		"nodes", c.res.Nodes,
		"edges", c.res.Edges,
		"components", c.res.Components,
		"violations", c.res.Found,
	)
	return c.res, nil
}

func (c *checker) connectivity() error {
	comps, err := bfs.Components(c.res.Graph)
	if err != nil {
		return errors.Wrap(err, "verify: components")
	}
	c.res.Components = len(comps)
	for _, comp := range comps {
		if len(comp) > c.res.Largest {
			c.res.Largest = len(comp)
		}
		if len(comp) == 1 {
			c.res.Isolated++
		}
	}
	return nil
}

// checker accumulates violations for one Verify call.
type checker struct {
	cfg config
	res *Result
	// edgeRows counts edge data lines, malformed ones included, so the
	// E1..En sequence stays aligned after a skipped row.
	edgeRows int
}

func (c *checker) add(v Violation) {
	c.res.Found++
	if c.cfg.maxViolations <= 0 || len(c.res.Violations) < c.cfg.maxViolations {
		c.res.Violations = append(c.res.Violations, v)
	}
}

// badRows records every malformed line of file as a format violation and
// lets the reader carry on with the next line.
func (c *checker) badRows(file string) pgdf.ReadOption {
	return pgdf.WithBadRowHandler(func(line int, err error) error {
		c.add(Violation{Rule: RuleFormat, File: file, Line: line, Detail: err.Error()})
		if file == FileEdges && !errors.Is(err, pgdf.ErrBadSchema) {
			c.edgeRows++
		}
		return nil
	})
}

func (c *checker) loadNodes(r io.Reader) error {
	err := pgdf.ReadNodes(r, func(row pgdf.NodeRow) error {
		c.res.Nodes++
		c.checkNode(row)
		return nil
	}, c.badRows(FileNodes))
	return errors.Wrapf(err, "verify: read %s", FileNodes)
}

func (c *checker) checkNode(row pgdf.NodeRow) {
	id, label := row.ID(), row.Label()
	at := func(rule Rule, detail string) {
		c.add(Violation{Rule: rule, File: FileNodes, Line: row.Line, ID: id, Detail: detail})
	}

	if !nodeID.MatchString(id) {
		at(RuleIDPattern, "id does not match "+nodeID.String())
	} else {
		kind, ok := pgdf.KindByLabel(label)
		if !ok {
			at(RuleKindLabel, "unknown label "+strconv.Quote(label))
		} else if kind.Tag() != id[:1] {
			at(RuleKindLabel, "tag "+id[:1]+" does not match label "+label)
		}
	}

	err := c.res.Graph.AddVertex(core.Vertex{ID: id, Label: label, Props: row.Props()})
	if errors.Is(err, core.ErrDuplicateID) {
		at(RuleDuplicateID, "id already used")
	} else if err != nil {
		at(RuleIDPattern, err.Error())
	}
}

func (c *checker) loadEdges(r io.Reader) error {
	br := bufio.NewReader(r)
	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "verify: read edges")
	}
	if header := strings.TrimRight(first, "\r\n"); header != pgdf.EdgeHeader.Header() {
		c.add(Violation{Rule: RuleEdgeHeader, File: FileEdges, Line: 1,
			Detail: "got " + strconv.Quote(header) + ", want " + strconv.Quote(pgdf.EdgeHeader.Header())})
	}

	hasOrgs := len(c.res.Graph.VerticesByLabel(pgdf.Organization.Label())) > 0
	err = pgdf.ReadEdges(io.MultiReader(strings.NewReader(first), br), func(row pgdf.EdgeRow) error {
		c.res.Edges++
		c.edgeRows++
		c.checkEdge(row, hasOrgs)
		return nil
	}, c.badRows(FileEdges))
	return errors.Wrapf(err, "verify: read %s", FileEdges)
}

func (c *checker) checkEdge(row pgdf.EdgeRow, hasOrgs bool) {
	at := func(rule Rule, detail string) {
		c.add(Violation{Rule: rule, File: FileEdges, Line: row.Line, ID: row.ID, Detail: detail})
	}

	if want := "E" + strconv.Itoa(c.edgeRows); row.ID != want {
		at(RuleEdgeSequence, "want "+want)
	}
	if row.Dir != pgdf.DirDirected {
		at(RuleDirection, "direction "+strconv.Quote(row.Dir))
	}
	known := false
	for _, l := range pgdf.EdgeLabels {
		known = known || l == row.Label
	}
	if !known {
		at(RuleEdgeLabel, "unknown label "+strconv.Quote(row.Label))
	}
	if row.Out == row.In {
		at(RuleSelfLoop, row.Label+" on "+row.Out)
	}

	g := c.res.Graph
	err := g.AddEdge(core.Edge{ID: row.ID, Label: row.Label, From: row.Out, To: row.In, Directed: row.Dir == pgdf.DirDirected})
	switch {
	case errors.Is(err, core.ErrVertexNotFound):
		at(RuleDangling, err.Error())
		return
	case errors.Is(err, core.ErrDuplicateID), errors.Is(err, core.ErrEmptyID):
		at(RuleEdgeSequence, err.Error())
		return
	case err != nil:
		at(RuleFormat, err.Error())
		return
	}

	src, _ := g.Vertex(row.Out)
	dst, _ := g.Vertex(row.In)
	if src.Label != pgdf.Person.Label() {
		at(RuleEdgeSource, "source "+row.Out+" is "+src.Label)
	}
	if row.Label == pgdf.LabelWorksFor {
		want := pgdf.Person.Label()
		if hasOrgs {
			want = pgdf.Organization.Label()
		}
		if dst.Label != want {
			at(RuleWorksForTarget, "target "+row.In+" is "+dst.Label+", want "+want)
		}
	}
	if row.Label == pgdf.LabelKnows && dst.Label != pgdf.Person.Label() {
		at(RuleKindLabel, "Knows target "+row.In+" is "+dst.Label)
	}
}

func (c *checker) checkManifest(m *manifest.Manifest) {
	mismatch := func(what string, want, got int) {
		if want != got {
			c.add(Violation{Rule: RuleManifest, File: FileManifest, ID: what,
				Detail: "manifest says " + strconv.Itoa(want) + ", files have " + strconv.Itoa(got)})
		}
	}
	mismatch("nodes.total", m.Nodes.Total, c.res.Nodes)
	mismatch("nodes.persons", m.Nodes.Persons, c.res.VertexCounts[pgdf.Person.Label()])
	mismatch("nodes.organizations", m.Nodes.Organizations, c.res.VertexCounts[pgdf.Organization.Label()])
	mismatch("edges.total", m.Edges.Total, c.res.Edges)
	for _, label := range pgdf.EdgeLabels {
		mismatch("edges.by_label."+label, m.Edges.ByLabel[label], c.res.EdgeCounts[label])
	}
}
