package pairwise

import (
	"fmt"

	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/internal/helpers"
)

// Property names a distance matrix invariant.
type Property string

const (
	PropertySize        Property = "size"
	PropertyDiagonal    Property = "zero-diagonal"
	PropertySymmetry    Property = "symmetry"
	PropertyNonNegative Property = "non-negative"
)

// InvariantError reports the first cell that violates a matrix invariant.
type InvariantError struct {
	Property Property
	Row, Col int
	Value    float32
}

func (e *InvariantError) Error() string {
	if e.Property == PropertySize {
		return fmt.Sprintf("distance matrix violates %s: %d values", e.Property, e.Row)
	}
	return fmt.Sprintf("distance matrix violates %s at (%d, %d): %v", e.Property, e.Row, e.Col, e.Value)
}

// Cell identifies a matrix entry on which two matrices disagree.
type Cell struct {
	Row, Col int
	Got      float32
	Want     float32
}

// Verify checks that distances is an n×n matrix with a zero diagonal,
// symmetric entries and no negative (or NaN) values.
func Verify(distances []float32, n int) error {
	if n < 0 || len(distances) != n*n {
		return &InvariantError{Property: PropertySize, Row: len(distances)}
	}
	for i := 0; i < n; i++ {
		if v := distances[helpers.Index(i, i, n)]; v != 0 {
			return &InvariantError{Property: PropertyDiagonal, Row: i, Col: i, Value: v}
		}
		for j := i + 1; j < n; j++ {
			v := distances[helpers.Index(i, j, n)]
			if !(v >= 0) {
				return &InvariantError{Property: PropertyNonNegative, Row: i, Col: j, Value: v}
			}
			if v != distances[helpers.Transposed(i, j, n)] {
				return &InvariantError{Property: PropertySymmetry, Row: i, Col: j, Value: v}
			}
		}
	}
	return nil
}

// Diff returns every cell where got differs from want.
// Both must hold n*n values.
func Diff(got, want []float32, n int) []Cell {
	core.MustFit(got, n)
	core.MustFit(want, n)

	var cells []Cell
	for k := range got {
		if got[k] != want[k] {
			i, j := helpers.RowCell(k, n)
			cells = append(cells, Cell{Row: i, Col: j, Got: got[k], Want: want[k]})
		}
	}
	return cells
}

// Equal reports whether a and b hold identical values.
func Equal(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}
