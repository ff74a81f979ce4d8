// SPDX-License-Identifier: MIT
// Package: pgdfgen/generator
//
// options.go — functional options for the generator.
//
// Contract:
//   • Options only record values; New validates them and returns
//     ErrInvalidConfig so callers get an error, not a panic, for bad input.
//   • The one exception is WithLogger(nil), a programmer error that panics.
//   • Determinism is explicit: WithSeed fixes the whole random stream.

package generator

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pgdfgen/pgdf"
)

// Option customizes a generation pass by mutating generatorConfig.
type Option func(*generatorConfig)

// WithSeed sets the seed of the single owned random source.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) { c.seed = seed }
}

// WithNodes sets the total node count (Persons + Organizations).
func WithNodes(total int) Option {
	return func(c *generatorConfig) { c.totalNodes = total }
}

// WithEdges sets the total edge count across all labels.
func WithEdges(total int) Option {
	return func(c *generatorConfig) { c.totalEdges = total }
}

// WithPersonRatio sets the Person share of the node total, in [0,1].
// Persons = round(total*ratio); Organizations take the remainder.
func WithPersonRatio(ratio float64) Option {
	return func(c *generatorConfig) { c.personRatio = ratio }
}

// WithBaseURL sets the prefix of the url column.
func WithBaseURL(base string) Option {
	return func(c *generatorConfig) { c.baseURL = base }
}

// WithSchemaPolicy selects PolicyMix or PolicySingle.
func WithSchemaPolicy(p SchemaPolicy) Option {
	return func(c *generatorConfig) { c.policy = p }
}

// WithPersonSchemas replaces the Person catalog. weights align with schemas.
func WithPersonSchemas(schemas []pgdf.Schema, weights []float64) Option {
	return withCatalog(pgdf.Person, schemas, weights)
}

// WithOrganizationSchemas replaces the Organization catalog.
func WithOrganizationSchemas(schemas []pgdf.Schema, weights []float64) Option {
	return withCatalog(pgdf.Organization, schemas, weights)
}

func withCatalog(k pgdf.Kind, schemas []pgdf.Schema, weights []float64) Option {
	cat := kindCatalog{schemas: schemas, weights: weights}.clone()
	return func(c *generatorConfig) { c.catalogs[k] = cat }
}

// WithEdgeWeights sets the relative Knows / Works_for / Likes weights.
func WithEdgeWeights(knows, worksFor, likes float64) Option {
	return func(c *generatorConfig) {
		c.edgeWeights = [numEdgeLabels]float64{knows, worksFor, likes}
	}
}

// WithLikesOrgProbability sets the chance that a Likes edge targets an
// Organization when any exist, in [0,1].
func WithLikesOrgProbability(p float64) Option {
	return func(c *generatorConfig) { c.likesOrgProbability = p }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.SugaredLogger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *generatorConfig) { c.logger = l }
}
