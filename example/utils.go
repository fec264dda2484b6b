package example

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/patrikhermansson/pairdist/core"
)

const maxFinite = math.MaxFloat32

// SamplePoints returns the five collinear demonstration points
// (1,0), (5,0), (8,0), (10,0) and (2,0).
func SamplePoints() core.PointSet {
	return core.PointSet{
		Xs: []float32{1, 5, 8, 10, 2},
		Ys: []float32{0, 0, 0, 0, 0},
	}
}

// RandomPoints returns n points drawn uniformly from [-scale, scale)².
func RandomPoints(rng *rand.Rand, n int, scale float32) core.PointSet {
	points := core.PointSet{
		Xs: make([]float32, n),
		Ys: make([]float32, n),
	}
	for i := 0; i < n; i++ {
		points.Xs[i] = (rng.Float32()*2 - 1) * scale
		points.Ys[i] = (rng.Float32()*2 - 1) * scale
	}
	return points
}

// FormatMatrix returns a formatted string of an n×n distance matrix.
// maxRows specifies how many rows (and columns) to include.
func FormatMatrix(distances []float32, n, maxRows int) string {
	limit := maxRows
	if n < limit {
		limit = n
	}
	var sb strings.Builder
	for i := 0; i < limit; i++ {
		for j := 0; j < limit; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%8.3f", distances[j+i*n])
		}
		if limit < n {
			sb.WriteString(" ...")
		}
		sb.WriteString("\n")
	}
	if limit < n {
		sb.WriteString("...\n")
	}
	return sb.String()
}
