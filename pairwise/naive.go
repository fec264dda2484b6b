package pairwise

import (
	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/internal/helpers"
)

// Naive fills distances with the Euclidean distance between every ordered
// pair of points, performing n*n distance calculations.
// It panics if len(xs) != len(ys) or if len(distances) != n*n.
func Naive(xs, ys, distances []float32) {
	NaiveFunc(core.Distance, xs, ys, distances)
}

// NaiveFunc is Naive with an arbitrary point distance function.
// Diagonal cells are computed like every other cell.
func NaiveFunc(distance core.PointDistanceFunc, xs, ys, distances []float32) {
	n := core.MustMatch(xs, ys)
	core.MustFit(distances, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			distances[helpers.Index(i, j, n)] = distance(xs[i], ys[i], xs[j], ys[j])
		}
	}
}
