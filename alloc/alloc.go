// SPDX-License-Identifier: MIT
// Package: pgdfgen/alloc
//
// alloc.go - proportional allocation of an integer total across weighted
// buckets with exact-count reconciliation (greatest remainder).
//
// Contract (strict):
//   - len(out) == len(weights); every out[i] >= 0; sum(out) == total.
//   - Weights need not sum to 1; they are normalized internally.
//   - Baseline is floor(total*w/sum). While the baseline is short of total,
//     the bucket with the largest remaining fraction (raw - out) gets +1;
//     ties go to the earliest bucket.
//   - total == 0 yields all zeros, even when every weight is zero.
//   - Never panics; invalid input returns a sentinel wrapped with context.
//
// Complexity: O(k) for the baseline + O(k·s) for s ≤ k reconciliation steps.

// Package alloc splits a fixed total across weighted categories so that
// integer bucket counts sum to the total exactly.
package alloc

import (
	"math"

	"github.com/cockroachdb/errors"
)

const methodSplit = "Split"

// Sentinel errors. Branch with errors.Is.
var (
	// ErrNegativeTotal indicates total < 0.
	ErrNegativeTotal = errors.New("alloc: negative total")
	// ErrNoWeights indicates an empty weight sequence.
	ErrNoWeights = errors.New("alloc: empty weight set")
	// ErrBadWeight indicates a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("alloc: invalid weight")
	// ErrZeroWeights indicates total > 0 with all weights zero.
	ErrZeroWeights = errors.New("alloc: weights sum to zero")
)

// Validate checks weights without allocating anything. It is what Split
// runs first; configuration layers call it to fail before any I/O.
func Validate(total int, weights []float64) error {
	if total < 0 {
		return errors.Wrapf(ErrNegativeTotal, "%s: total=%d", methodSplit, total)
	}
	if len(weights) == 0 {
		return errors.Wrapf(ErrNoWeights, "%s", methodSplit)
	}
	var sum float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.Wrapf(ErrBadWeight, "%s: weights[%d]=%v", methodSplit, i, w)
		}
		sum += w
	}
	if sum == 0 && total > 0 {
		return errors.Wrapf(ErrZeroWeights, "%s: total=%d", methodSplit, total)
	}
	return nil
}

// Split allocates total across len(weights) buckets.
func Split(total int, weights []float64) ([]int, error) {
	if err := Validate(total, weights); err != nil {
		return nil, err
	}

	out := make([]int, len(weights))
	if total == 0 {
		return out, nil
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}

	// 1) Raw shares and floor baseline.
	raw := make([]float64, len(weights))
	assigned := 0
	for i, w := range weights {
		raw[i] = float64(total) * (w / sum)
		out[i] = int(math.Floor(raw[i]))
		assigned += out[i]
	}

	// 2) Hand out the shortfall one unit at a time by largest remainder.
	for assigned < total {
		best := 0
		bestRem := math.Inf(-1)
		for i := range raw {
			if weights[i] == 0 {
				continue
			}
			if rem := raw[i] - float64(out[i]); rem > bestRem {
				best, bestRem = i, rem
			}
		}
		out[best]++
		assigned++
	}

	// 3) Float drift guard: floors never exceed raw, but keep the invariant
	// explicit by trimming the smallest remainder if it ever happens.
	for assigned > total {
		worst := -1
		worstRem := math.Inf(1)
		for i := range raw {
			if out[i] == 0 {
				continue
			}
			if rem := raw[i] - float64(out[i]); rem < worstRem {
				worst, worstRem = i, rem
			}
		}
		out[worst]--
		assigned--
	}

	return out, nil
}
