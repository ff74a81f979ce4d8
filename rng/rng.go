// SPDX-License-Identifier: MIT
// Package: pgdfgen/rng
//
// rng.go - seeded SplitMix64 stream and the draw helpers used by generators.
//
// Contract:
//   - New(seed) is deterministic: same seed and same call order => same draws.
//   - IntRange(lo, hi) draws from the half-open range [lo, hi).
//   - Float64 draws from [0, 1).
//   - Choice draws one element of a non-empty slice uniformly.
//   - No reseeding during a run; Seed exists only to satisfy rand.Source.

package rng

import (
	"math/rand"

	"github.com/cockroachdb/errors"
)

// ErrEmptyRange is returned by the checked helpers when lo >= hi or the
// candidate slice is empty.
var ErrEmptyRange = errors.New("rng: empty range")

// SplitMix64 constants (Vigna 2014): golden-ratio increment and the two
// finalizer multipliers.
const (
	goldenGamma = 0x9e3779b97f4a7c15
	mixMul1     = 0xbf58476d1ce4e5b9
	mixMul2     = 0x94d049bb133111eb
)

// splitMix64 implements rand.Source64. State advances by a fixed increment
// per draw, so the n-th output is a function of (seed, n) only.
type splitMix64 struct {
	state uint64
}

// Uint64 advances the counter and returns the mixed value.
func (s *splitMix64) Uint64() uint64 {
	s.state += goldenGamma
	z := s.state
	z = (z ^ (z >> 30)) * mixMul1
	z = (z ^ (z >> 27)) * mixMul2
	return z ^ (z >> 31)
}

// Int63 returns a non-negative 63-bit value.
func (s *splitMix64) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed resets the counter.
func (s *splitMix64) Seed(seed int64) {
	s.state = uint64(seed)
}

// Rand is the owned random source of a run.
type Rand struct {
	seed int64
	r    *rand.Rand
}

// New returns a Rand seeded with seed.
// Complexity: O(1).
func New(seed int64) *Rand {
	src := &splitMix64{}
	src.Seed(seed)
	return &Rand{seed: seed, r: rand.New(src)}
}

// Seed reports the seed this stream was constructed from.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Intn returns a uniform int in [0, n). It panics if n <= 0, like math/rand;
// callers guard emptiness before drawing.
func (r *Rand) Intn(n int) int {
	return r.r.Intn(n)
}

// IntRange returns a uniform int in [lo, hi). It panics if hi <= lo.
func (r *Rand) IntRange(lo, hi int) int {
	return lo + r.r.Intn(hi-lo)
}

// CheckedIntRange is IntRange without the panic.
func (r *Rand) CheckedIntRange(lo, hi int) (int, error) {
	if hi <= lo {
		return 0, errors.Wrapf(ErrEmptyRange, "IntRange: [%d,%d)", lo, hi)
	}
	return r.IntRange(lo, hi), nil
}

// Float64 returns a uniform float64 in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Uint64 exposes the raw stream (used for sub-stream derivation).
func (r *Rand) Uint64() uint64 {
	return r.r.Uint64()
}

// Choice returns a uniformly drawn element of items. It panics on an empty
// slice; lexicon pools are never empty.
func Choice[T any](r *Rand, items []T) T {
	return items[r.r.Intn(len(items))]
}

// CheckedChoice is Choice without the panic.
func CheckedChoice[T any](r *Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.Wrap(ErrEmptyRange, "Choice: no candidates")
	}
	return Choice(r, items), nil
}

// Weighted returns an index drawn with probability proportional to weights.
// Weights must be non-negative with a positive sum; otherwise ErrEmptyRange.
// Consumes exactly one Float64 draw.
func (r *Rand) Weighted(weights []float64) (int, error) {
	var sum float64
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum <= 0 {
		return 0, errors.Wrap(ErrEmptyRange, "Weighted: no positive weight")
	}
	x := r.Float64() * sum
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if x < w {
			return i, nil
		}
		x -= w
	}
	// float drift: fall back to the last positive bucket
	return last, nil
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with one SplitMix64 finalizer round.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + goldenGamma)
	x += goldenGamma
	x = (x ^ (x >> 30)) * mixMul1
	x = (x ^ (x >> 27)) * mixMul2
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic sub-stream. It consumes one
// draw from r so that repeated derivations with the same stream id differ.
// Complexity: O(1).
func (r *Rand) Derive(stream uint64) *Rand {
	return New(deriveSeed(int64(r.Uint64()), stream))
}
