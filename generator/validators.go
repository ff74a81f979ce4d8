// SPDX-License-Identifier: MIT
// Package: pgdfgen/generator
//
// validators.go — configuration checks run by New before any output exists.

package generator

import (
	"math"
	"strings"

	"github.com/katalvlaran/pgdfgen/alloc"
	"github.com/katalvlaran/pgdfgen/pgdf"
)

// validateConfig checks every knob and returns the first problem found,
// marked with ErrInvalidConfig.
func validateConfig(cfg *generatorConfig) error {
	if cfg.totalNodes < 0 {
		return configErrorf(methodNew, "node total must be >= 0 (got %d)", cfg.totalNodes)
	}
	if cfg.totalEdges < 0 {
		return configErrorf(methodNew, "edge total must be >= 0 (got %d)", cfg.totalEdges)
	}
	if err := validateProbability("person ratio", cfg.personRatio); err != nil {
		return err
	}
	if err := validateProbability("likes organization probability", cfg.likesOrgProbability); err != nil {
		return err
	}
	if strings.ContainsAny(cfg.baseURL, "|\r\n") {
		return configErrorf(methodNew, "base URL %q contains a delimiter or newline", cfg.baseURL)
	}
	if _, err := ParseSchemaPolicy(string(cfg.policy)); err != nil {
		return err
	}
	if err := alloc.Validate(cfg.totalEdges, cfg.edgeWeights[:]); err != nil {
		return configCause(err, methodNew, "edge label weights %v", cfg.edgeWeights)
	}
	persons, orgs := populations(cfg.totalNodes, cfg.personRatio)
	if err := validateCatalog(pgdf.Person, cfg.catalogs[pgdf.Person], persons); err != nil {
		return err
	}
	return validateCatalog(pgdf.Organization, cfg.catalogs[pgdf.Organization], orgs)
}

func validateProbability(what string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return configErrorf(methodNew, "%s must be in [0,1] (got %v)", what, p)
	}
	return nil
}

// validateCatalog checks one kind's schemas and weights. An empty catalog is
// accepted only when the kind's population is zero.
func validateCatalog(k pgdf.Kind, cat kindCatalog, population int) error {
	if len(cat.schemas) == 0 {
		if population == 0 {
			return nil
		}
		return configErrorf(methodNew, "%s: no schema variants for %d entities", k, population)
	}
	if len(cat.weights) != len(cat.schemas) {
		return configErrorf(methodNew, "%s: %d schema weights for %d schemas", k, len(cat.weights), len(cat.schemas))
	}
	for i, s := range cat.schemas {
		if err := s.Validate(); err != nil {
			return configCause(err, methodNew, "%s schema #%d", k, i)
		}
	}
	if err := alloc.Validate(population, cat.weights); err != nil {
		return configCause(err, methodNew, "%s schema weights %v", k, cat.weights)
	}
	return nil
}

// populations splits total into Persons = round(total*ratio), clamped to
// [0,total], and Organizations = remainder.
func populations(total int, ratio float64) (persons, orgs int) {
	persons = int(math.Round(float64(total) * ratio))
	if persons < 0 {
		persons = 0
	}
	if persons > total {
		persons = total
	}
	return persons, total - persons
}
