package alloc_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgdfgen/alloc"
)

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

func TestSplit_Table(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []float64
		want    []int
	}{
		{"edge labels even", 100, []float64{0.4, 0.3, 0.3}, []int{40, 30, 30}},
		{"edge labels uneven", 101, []float64{0.4, 0.3, 0.3}, []int{41, 30, 30}},
		{"unnormalized weights", 10, []float64{2, 1, 1}, []int{5, 3, 2}},
		{"person schemas", 8, []float64{0.5, 0.3, 0.2}, []int{4, 2, 2}},
		{"org schemas", 2, []float64{0.7, 0.3}, []int{1, 1}},
		{"ties go first", 2, []float64{1, 1, 1}, []int{1, 1, 0}},
		{"zero total", 0, []float64{0.5, 0.5}, []int{0, 0}},
		{"zero total zero weights", 0, []float64{0, 0}, []int{0, 0}},
		{"single nonzero weight", 17, []float64{0, 3, 0}, []int{0, 17, 0}},
		{"single bucket", 5, []float64{0.1}, []int{5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := alloc.Split(tc.total, tc.weights)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSplit_SumInvariant sweeps totals and weight shapes and checks the
// exact-sum and non-negativity invariants.
func TestSplit_SumInvariant(t *testing.T) {
	shapes := [][]float64{
		{0.4, 0.3, 0.3},
		{0.5, 0.3, 0.2},
		{0.7, 0.3},
		{1, 2, 3, 4, 5, 6, 7},
		{0.333, 0.333, 0.334},
		{1e-9, 1, 1e9},
	}
	for _, w := range shapes {
		for total := 0; total <= 1000; total += 7 {
			got, err := alloc.Split(total, w)
			require.NoError(t, err)
			require.Len(t, got, len(w))
			require.Equal(t, total, sum(got), "total=%d weights=%v", total, w)
			for _, c := range got {
				require.GreaterOrEqual(t, c, 0)
			}
		}
	}
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []float64
		want    error
	}{
		{"negative total", -1, []float64{1}, alloc.ErrNegativeTotal},
		{"no weights", 3, nil, alloc.ErrNoWeights},
		{"negative weight", 3, []float64{1, -0.1}, alloc.ErrBadWeight},
		{"nan weight", 3, []float64{math.NaN()}, alloc.ErrBadWeight},
		{"inf weight", 3, []float64{math.Inf(1)}, alloc.ErrBadWeight},
		{"all zero", 3, []float64{0, 0}, alloc.ErrZeroWeights},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := alloc.Split(tc.total, tc.weights)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
