package pairwise

import (
	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/internal/helpers"
)

// Optimized fills distances like Naive but only computes the upper triangle,
// n*(n-1)/2 distance calculations. Cells below the diagonal are copied from
// their transposed cell, which an earlier row already computed.
// It panics if len(xs) != len(ys) or if len(distances) != n*n.
func Optimized(xs, ys, distances []float32) {
	OptimizedFunc(core.Distance, xs, ys, distances)
}

// OptimizedFunc is Optimized with an arbitrary point distance function.
// distance must be symmetric and return zero for identical points.
func OptimizedFunc(distance core.PointDistanceFunc, xs, ys, distances []float32) {
	n := core.MustMatch(xs, ys)
	core.MustFit(distances, n)

	for i := 0; i < n; i++ {
		row := distances[helpers.Index(i, 0, n):helpers.Index(i+1, 0, n)]

		// Copy all distances already calculated for this point.
		for j := 0; j < i; j++ {
			row[j] = distances[helpers.Transposed(i, j, n)]
		}

		// The buffer may hold stale data, so the diagonal is written explicitly.
		row[i] = 0

		for j := i + 1; j < n; j++ {
			row[j] = distance(xs[i], ys[i], xs[j], ys[j])
		}
	}
}
