// SPDX-License-Identifier: MIT
// Package: pgdfgen/generator
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • generatorConfig is the single source of truth for all generator knobs.
//   • Defaults reproduce the reference dataset; no globals.
//   • newConfig applies options in order (later overrides earlier).
//   • Catalogs are deep-copied so callers cannot mutate a running config.

package generator

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pgdfgen/pgdf"
)

// SchemaPolicy selects how entities are spread over schema variants.
type SchemaPolicy string

const (
	// PolicyMix splits each kind across its variants by weight (Allocator),
	// one block per non-empty variant in catalog order.
	PolicyMix SchemaPolicy = "mix"
	// PolicySingle draws one variant per kind once per run from the weights.
	// Degraded mode: every entity of a kind shares one schema.
	PolicySingle SchemaPolicy = "single"
)

// ParseSchemaPolicy resolves a policy name; "" means PolicyMix.
func ParseSchemaPolicy(s string) (SchemaPolicy, error) {
	switch SchemaPolicy(s) {
	case "", PolicyMix:
		return PolicyMix, nil
	case PolicySingle:
		return PolicySingle, nil
	}
	return "", configErrorf(methodNew, "unknown schema policy %q (want %q or %q)", s, PolicyMix, PolicySingle)
}

// kindCatalog is the schema catalog of one entity kind.
type kindCatalog struct {
	schemas []pgdf.Schema
	weights []float64
}

func (c kindCatalog) clone() kindCatalog {
	out := kindCatalog{
		schemas: make([]pgdf.Schema, len(c.schemas)),
		weights: append([]float64(nil), c.weights...),
	}
	for i, s := range c.schemas {
		out.schemas[i] = s.Clone()
	}
	return out
}

// generatorConfig aggregates every knob of one generation pass.
type generatorConfig struct {
	seed       int64
	totalNodes int
	totalEdges int

	personRatio float64
	baseURL     string
	policy      SchemaPolicy

	catalogs [2]kindCatalog // indexed by pgdf.Kind

	edgeWeights         [numEdgeLabels]float64
	likesOrgProbability float64

	logger *zap.SugaredLogger
}

// newConfig constructs a config with the reference defaults and applies
// opts in order.
// Complexity: O(len(opts)) + O(catalog size) for the defensive copies.
func newConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		seed:                DefaultSeed,
		totalNodes:          DefaultTotalNodes,
		totalEdges:          DefaultTotalEdges,
		personRatio:         DefaultPersonRatio,
		baseURL:             DefaultBaseURL,
		policy:              PolicyMix,
		edgeWeights:         DefaultEdgeWeights,
		likesOrgProbability: DefaultLikesOrgProbability,
		logger:              zap.NewNop().Sugar(),
	}
	cfg.catalogs[pgdf.Person] = kindCatalog{schemas: pgdf.DefaultPersonSchemas, weights: pgdf.DefaultPersonSchemaWeights}.clone()
	cfg.catalogs[pgdf.Organization] = kindCatalog{schemas: pgdf.DefaultOrgSchemas, weights: pgdf.DefaultOrgSchemaWeights}.clone()

	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
