package core

import "fmt"

// PointSet is an ordered set of 2D points stored as two coordinate slices.
// Point i is (Xs[i], Ys[i]).
type PointSet struct {
	Xs []float32
	Ys []float32
}

// NewPointSet validates xs and ys and wraps them without copying.
func NewPointSet(xs, ys []float32) (PointSet, error) {
	if len(xs) != len(ys) {
		return PointSet{}, fmt.Errorf("%w: len(xs)=%d, len(ys)=%d", ErrLengthMismatch, len(xs), len(ys))
	}
	return PointSet{Xs: xs, Ys: ys}, nil
}

// Len returns the number of points.
func (p PointSet) Len() int {
	return len(p.Xs)
}

// At returns the coordinates of point i.
func (p PointSet) At(i int) (float32, float32) {
	return p.Xs[i], p.Ys[i]
}

// Append adds a point to the set.
func (p *PointSet) Append(x, y float32) {
	p.Xs = append(p.Xs, x)
	p.Ys = append(p.Ys, y)
}
