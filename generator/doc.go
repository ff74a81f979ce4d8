// Package generator produces a deterministic synthetic property graph in
// PGDF: a node file of Person and Organization schema blocks and an edge
// file of typed, directed Knows / Works_for / Likes relationships.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:           a function that mutates generatorConfig before use.
//     – generatorConfig:  seed, sizes, ratio, schema catalogs, weights, logger.
//   - Plan: the sizing of a run (population per kind, schema block counts,
//     edge count per label), computed by the Allocator; under PolicySingle
//     each kind's variant is one weighted draw from the seeded stream.
//   - Node emitter: one header per schema block actually used, then one row
//     per entity; the name is synthesized first so email/website derive
//     from it. Ids are kind tag + 1-based per-kind counter.
//   - Edge sampler: streams edges label by label with global ids E1..En.
//     Knows is Person→Person without self-loops; Works_for targets an
//     Organization (Person fallback when none exist); Likes targets an
//     Organization with probability 0.5 by default, otherwise a different Person.
//
// Guarantees:
//
//   - Same seed and configuration ⇒ byte-identical output.
//   - Exact totals: node and edge counts always equal the configuration.
//   - Configuration errors surface from New before any output exists.
//   - A single Person that would need a Person target is a configuration
//     error (ErrPopulationTooSmall, marked ErrInvalidConfig) from New.
//   - An empty Person population with edges requested (ErrNoPersons) is
//     reported after the node output is complete and before any edge output
//     is produced; GenerateFiles then removes a stale edge file.
//   - Single-threaded; a Generator may be reused, every call starts a fresh
//     random stream from the configured seed.
package generator
