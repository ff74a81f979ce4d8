// Package rng is the single deterministic random source of a generation run.
//
// Every stochastic decision in pgdfgen (field values, schema choice, edge
// endpoints) is drawn from one *Rand constructed from one integer seed.
// Nothing in the module reads process-wide entropy.
//
// The underlying stream is SplitMix64: a counter-based generator whose
// output depends only on the seed and on the number of draws made so far.
// It is plugged into math/rand as a rand.Source64, so Intn and Float64 keep
// the frozen math/rand derivations and the byte stream of an output file is
// a pure function of (seed, configuration, call order).
//
// Concurrency:
//   - A *Rand is NOT goroutine-safe. Generation is single-threaded by design.
//   - Derive produces independent sub-streams for callers that want to split
//     work, provided they fix a deterministic merge order themselves.
package rng
