package core

import (
	"fmt"
	"math"
)

// Distances is a map of human–readable names to point distance functions.
// You can use it to choose a distance metric by name.
// Every entry is symmetric and returns zero for identical points.
var Distances = map[string]PointDistanceFunc{
	"euclidean":         Distance,
	"squared_euclidean": SquaredDistance,
	"manhattan":         ManhattanDistance,
	"chebyshev":         ChebyshevDistance,
}

// PointDistanceFunc computes the distance between two 2D points.
// (x0, y0): the first point.
// (x1, y1): the second point.
// Returns the computed distance as a float32.
type PointDistanceFunc func(x0, y0, x1, y1 float32) float32

// Distance computes the Euclidean distance between (x0, y0) and (x1, y1)
// in single precision.
func Distance(x0, y0, x1, y1 float32) float32 {
	a := x0 - x1
	b := y0 - y1
	return float32(math.Sqrt(float64(a*a + b*b)))
}

// SquaredDistance computes the squared Euclidean distance between two points.
func SquaredDistance(x0, y0, x1, y1 float32) float32 {
	a := x0 - x1
	b := y0 - y1
	return a*a + b*b
}

// ManhattanDistance computes the Manhattan (L1) distance between two points.
func ManhattanDistance(x0, y0, x1, y1 float32) float32 {
	return abs32(x0-x1) + abs32(y0-y1)
}

// ChebyshevDistance computes the Chebyshev (L-infinity) distance between two points.
func ChebyshevDistance(x0, y0, x1, y1 float32) float32 {
	a := abs32(x0 - x1)
	b := abs32(y0 - y1)
	if a > b {
		return a
	}
	return b
}

// GetDistanceFunc returns the distance function registered under name.
func GetDistanceFunc(name string) (PointDistanceFunc, error) {
	fn, ok := Distances[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDistance, name)
	}
	return fn, nil
}

func abs32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}
