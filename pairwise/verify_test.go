package pairwise_test

import (
	"errors"
	"math"
	"testing"

	"github.com/patrikhermansson/pairdist/pairwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		d        []float32
		n        int
		property pairwise.Property
		row, col int
	}{
		{"Valid", []float32{0, 3, 3, 0}, 2, "", 0, 0},
		{"Empty", nil, 0, "", 0, 0},
		{"Size", []float32{0, 1, 1}, 2, pairwise.PropertySize, 3, 0},
		{"Diagonal", []float32{0, 3, 3, 1}, 2, pairwise.PropertyDiagonal, 1, 1},
		{"Symmetry", []float32{0, 3, 4, 0}, 2, pairwise.PropertySymmetry, 0, 1},
		{"Negative", []float32{0, -3, -3, 0}, 2, pairwise.PropertyNonNegative, 0, 1},
		{"NaN", []float32{0, float32(math.NaN()), 1, 0}, 2, pairwise.PropertyNonNegative, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pairwise.Verify(tt.d, tt.n)
			if tt.property == "" {
				require.NoError(t, err)
				return
			}
			var invErr *pairwise.InvariantError
			require.True(t, errors.As(err, &invErr), "got %v", err)
			assert.Equal(t, tt.property, invErr.Property)
			assert.Equal(t, tt.row, invErr.Row)
			assert.Equal(t, tt.col, invErr.Col)
			assert.Contains(t, err.Error(), string(tt.property))
		})
	}
}

func TestDiff(t *testing.T) {
	want := []float32{0, 1, 2, 1, 0, 3, 2, 3, 0}
	got := []float32{0, 1, 2, 1, 0, 3, 9, 3, 0}

	cells := pairwise.Diff(got, want, 3)
	require.Len(t, cells, 1)
	assert.Equal(t, pairwise.Cell{Row: 2, Col: 0, Got: 9, Want: 2}, cells[0])

	assert.Empty(t, pairwise.Diff(want, want, 3))
	assert.Panics(t, func() { pairwise.Diff(got[:8], want, 3) })
}

func TestEqual(t *testing.T) {
	assert.True(t, pairwise.Equal([]float32{0, 1}, []float32{0, 1}))
	assert.False(t, pairwise.Equal([]float32{0, 1}, []float32{0, 2}))
	assert.False(t, pairwise.Equal([]float32{0}, []float32{0, 1}))
}

func TestToSymDense(t *testing.T) {
	n := len(sampleXs)
	sym, err := pairwise.ToSymDense(pairwise.ComputeOptimized(sampleXs, sampleYs), n)
	require.NoError(t, err)

	assert.Equal(t, n, sym.SymmetricDim())
	assert.Equal(t, 4.0, sym.At(0, 1))
	assert.Equal(t, 4.0, sym.At(1, 0))
	assert.Equal(t, 6.0, sym.At(4, 2))
	assert.Equal(t, 0.0, sym.At(3, 3))

	_, err = pairwise.ToSymDense([]float32{0, 3, 4, 0}, 2)
	assert.Error(t, err)

	empty, err := pairwise.ToSymDense(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.SymmetricDim())
}
