package pairwise

import (
	"github.com/patrikhermansson/pairdist/internal/helpers"
	"gonum.org/v1/gonum/mat"
)

// ToSymDense converts a verified distance matrix into a gonum symmetric matrix.
// Only the upper triangle is read, so the matrix must pass Verify first.
func ToSymDense(distances []float32, n int) (*mat.SymDense, error) {
	if err := Verify(distances, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return &mat.SymDense{}, nil
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, float64(distances[helpers.Index(i, j, n)]))
		}
	}
	return sym, nil
}
