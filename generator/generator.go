// SPDX-License-Identifier: MIT
// Package: pgdfgen/generator
//
// generator.go — the public entry points: New, Plan, Generate, GenerateFiles.
//
// Lifecycle of one pass:
//  1. New validates the configuration and sizes the Plan (no I/O).
//  2. Generate seeds a fresh Random Source, emits nodes, checks the edge
//     preconditions, then streams edges.
//  3. The Report summarises what was written.
//
// A Generator is immutable after New and may run any number of passes; each
// pass restarts from the seed, so repeated passes produce identical bytes.
// Passes are single-threaded and must not share writers.

package generator

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/pgdfgen/pgdf"
	"github.com/katalvlaran/pgdfgen/rng"
	"github.com/katalvlaran/pgdfgen/synth"
)

// Generator produces one PGDF node file and one PGDF edge file per pass.
type Generator struct {
	cfg  generatorConfig
	plan Plan
}

// BlockReport describes one emitted schema block.
type BlockReport struct {
	Kind    string
	Variant int
	Schema  pgdf.Schema
	Rows    int
}

// Report summarises a generation pass. RunID only tags log lines; it never
// reaches the output files.
type Report struct {
	RunID         string
	Seed          int64
	Policy        SchemaPolicy
	Persons       int
	Organizations int
	Blocks        []BlockReport
	// EdgeCounts maps label → edges written.
	EdgeCounts map[string]int
	Edges      int
	// OrganizationFallback is set when Works_for/Likes had to target Persons.
	OrganizationFallback bool
	Warnings             []string
	Duration             time.Duration
}

// Nodes is the total number of node rows written.
func (r *Report) Nodes() int { return r.Persons + r.Organizations }

// run is the mutable state of one pass. It owns the only Random Source.
type run struct {
	cfg    *generatorConfig
	plan   Plan
	r      *rng.Rand
	reg    synth.Registry
	log    *zap.SugaredLogger
	report *Report
	start  time.Time

	persons []string
	orgs    []string
}

// New validates opts and sizes the pass.
// Returns an error marked ErrInvalidConfig on any bad knob; nothing is written.
func New(opts ...Option) (*Generator, error) {
	cfg := newConfig(opts...)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	plan, err := buildPlan(&cfg)
	if err != nil {
		return nil, err
	}
	reg := synth.NewRegistry(cfg.baseURL)
	for _, k := range pgdf.Kinds {
		for _, s := range cfg.catalogs[k].schemas {
			for _, col := range s[2:] {
				if !reg.Has(col) {
					cfg.logger.Warnw("column has no synthesizer; values will be empty", "kind", k.String(), "column", col)
				}
			}
		}
	}
	return &Generator{cfg: cfg, plan: plan}, nil
}

// Plan returns the sizes every pass will produce.
func (g *Generator) Plan() Plan {
	p := g.plan
	p.PersonBlocks = append([]int(nil), p.PersonBlocks...)
	p.OrganizationBlocks = append([]int(nil), p.OrganizationBlocks...)
	return p
}

// Generate runs one pass into the given writers.
//
// Errors:
//   - ErrNoPersons once nodes are complete; nothing has been written to
//     edges and the returned Report covers the nodes.
//   - ErrOutput on any write failure.
func (g *Generator) Generate(nodes, edges io.Writer) (*Report, error) {
	if nodes == nil || edges == nil {
		return nil, configErrorf(methodGenerate, "nil writer")
	}
	ru := g.newRun()
	if err := ru.writeNodes(nodes); err != nil {
		return ru.report, err
	}
	if err := ru.checkEdgePreconditions(); err != nil {
		return ru.report, err
	}
	if err := ru.emitEdges(pgdf.NewEdgeWriter(edges)); err != nil {
		return ru.report, err
	}
	ru.finish()
	return ru.report, nil
}

// GenerateFiles runs one pass into two files, truncating existing ones.
// The edge file is created only after the edge preconditions hold; when
// they fail, an edge file left by an earlier run is removed so it cannot
// reference the rewritten nodes.
func (g *Generator) GenerateFiles(nodesPath, edgesPath string) (*Report, error) {
	if nodesPath == "" || edgesPath == "" {
		return nil, configErrorf(methodGenerateFiles, "output paths must be non-empty")
	}
	if filepath.Clean(nodesPath) == filepath.Clean(edgesPath) {
		return nil, configErrorf(methodGenerateFiles, "nodes and edges share the path %q", nodesPath)
	}

	ru := g.newRun()
	if err := writeFile(nodesPath, ru.writeNodes); err != nil {
		return ru.report, err
	}
	if err := ru.checkEdgePreconditions(); err != nil {
		if rmErr := os.Remove(edgesPath); rmErr != nil && !os.IsNotExist(rmErr) {
			return ru.report, errors.CombineErrors(err, outputError(rmErr, methodGenerateFiles, "remove stale "+edgesPath))
		}
		return ru.report, err
	}
	err := writeFile(edgesPath, func(w io.Writer) error {
		return ru.emitEdges(pgdf.NewEdgeWriter(w))
	})
	if err != nil {
		return ru.report, err
	}
	ru.finish()
	return ru.report, nil
}

// writeFile creates path, hands it to fill and closes it, keeping the first error.
func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return outputError(err, methodGenerateFiles, "create "+path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = outputError(cerr, methodGenerateFiles, "close "+path)
		}
	}()
	return fill(f)
}

func (g *Generator) newRun() *run {
	cfg := &g.cfg
	report := &Report{
		RunID:      uuid.NewString(),
		Seed:       cfg.seed,
		Policy:     cfg.policy,
		EdgeCounts: make(map[string]int, numEdgeLabels),
	}
	ru := &run{
		cfg:    cfg,
		plan:   g.plan,
		r:      rng.New(cfg.seed),
		reg:    synth.NewRegistry(cfg.baseURL),
		log:    cfg.logger.With("run_id", report.RunID),
		report: report,
		start:  time.Now(),
	}
	ru.log.Infow("generation started",
		"seed", cfg.seed,
		"policy", string(cfg.policy),
		"persons", g.plan.Persons,
		"organizations", g.plan.Organizations,
		"edges", g.plan.TotalEdges(),
	)
	return ru
}

// writeNodes emits the node file and records the populations.
func (ru *run) writeNodes(w io.Writer) error {
	if err := ru.emitNodes(pgdf.NewNodeWriter(w)); err != nil {
		return err
	}
	ru.report.Persons = len(ru.persons)
	ru.report.Organizations = len(ru.orgs)
	ru.log.Infow("nodes written", "persons", len(ru.persons), "organizations", len(ru.orgs))
	return nil
}

func (ru *run) finish() {
	ru.report.Duration = time.Since(ru.start)
	ru.log.Infow("generation finished", "nodes", ru.report.Nodes(), "edges", ru.report.Edges)
}
