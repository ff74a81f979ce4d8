// SPDX-License-Identifier: MIT
// Package: pgdfgen/generator
//
// plan.go — the sizing stage: populations, schema blocks, edge buckets.
//
// A Plan is a pure function of the configuration (and, under PolicySingle,
// of the first draws of the seeded stream). It is computed once by New and
// replayed exactly by every Generate call.

package generator

import (
	"github.com/katalvlaran/pgdfgen/alloc"
	"github.com/katalvlaran/pgdfgen/pgdf"
	"github.com/katalvlaran/pgdfgen/rng"
)

// Plan describes the sizes a generation pass will produce.
type Plan struct {
	Seed          int64
	Persons       int
	Organizations int
	// PersonBlocks[i] / OrganizationBlocks[i] is the row count of schema
	// variant i; zero-count variants emit no header.
	PersonBlocks       []int
	OrganizationBlocks []int
	// EdgeCounts is indexed Knows, Works_for, Likes.
	EdgeCounts [numEdgeLabels]int
}

// Population returns the entity count of kind k.
func (p Plan) Population(k pgdf.Kind) int {
	if k == pgdf.Person {
		return p.Persons
	}
	return p.Organizations
}

// Blocks returns the per-variant row counts of kind k.
func (p Plan) Blocks(k pgdf.Kind) []int {
	if k == pgdf.Person {
		return p.PersonBlocks
	}
	return p.OrganizationBlocks
}

// TotalEdges is the sum of the label buckets.
func (p Plan) TotalEdges() int {
	return p.EdgeCounts[idxKnows] + p.EdgeCounts[idxWorksFor] + p.EdgeCounts[idxLikes]
}

// EdgeCount returns the bucket of label, or 0 for an unknown label.
func (p Plan) EdgeCount(label string) int {
	for i, l := range edgeLabels {
		if l == label {
			return p.EdgeCounts[i]
		}
	}
	return 0
}

// needsPersonTarget reports whether any edge of the plan may require a
// Person→Person draw.
func (p Plan) needsPersonTarget(likesOrgProbability float64) bool {
	if p.EdgeCounts[idxKnows] > 0 {
		return true
	}
	if p.EdgeCounts[idxWorksFor] > 0 && p.Organizations == 0 {
		return true
	}
	if p.EdgeCounts[idxLikes] > 0 && (p.Organizations == 0 || likesOrgProbability < 1) {
		return true
	}
	return false
}

// buildPlan sizes every stage. cfg must already be validated.
func buildPlan(cfg *generatorConfig) (Plan, error) {
	p := Plan{Seed: cfg.seed}
	p.Persons, p.Organizations = populations(cfg.totalNodes, cfg.personRatio)

	// Under PolicySingle the variant draws are the first draws of the run
	// stream; replay them here so the plan matches the emitted file.
	r := rng.New(cfg.seed)
	for _, k := range pgdf.Kinds {
		blocks, err := planBlocks(cfg, r, k, p.Population(k))
		if err != nil {
			return Plan{}, err
		}
		if k == pgdf.Person {
			p.PersonBlocks = blocks
		} else {
			p.OrganizationBlocks = blocks
		}
	}

	counts, err := alloc.Split(cfg.totalEdges, cfg.edgeWeights[:])
	if err != nil {
		return Plan{}, configCause(err, methodNew, "edge buckets")
	}
	copy(p.EdgeCounts[:], counts)

	// A lone Person cannot avoid self-loops. An empty Person population is
	// left to ErrNoPersons, raised once the nodes are written.
	if p.Persons > 0 && p.Persons < minPersonsForPersonTargets && p.needsPersonTarget(cfg.likesOrgProbability) {
		return Plan{}, configCause(ErrPopulationTooSmall, methodNew, "%d Person(s), Person targets required", p.Persons)
	}
	return p, nil
}

// planBlocks splits population over kind k's variants.
func planBlocks(cfg *generatorConfig, r *rng.Rand, k pgdf.Kind, population int) ([]int, error) {
	cat := cfg.catalogs[k]
	if len(cat.schemas) == 0 {
		return nil, nil
	}
	switch cfg.policy {
	case PolicySingle:
		blocks := make([]int, len(cat.schemas))
		if population == 0 {
			return blocks, nil
		}
		i, err := r.Weighted(cat.weights)
		if err != nil {
			return nil, configCause(err, methodNew, "%s schema draw", k)
		}
		blocks[i] = population
		return blocks, nil
	default:
		blocks, err := alloc.Split(population, cat.weights)
		if err != nil {
			return nil, configCause(err, methodNew, "%s schema split", k)
		}
		return blocks, nil
	}
}
