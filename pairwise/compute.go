package pairwise

import (
	"fmt"

	"github.com/patrikhermansson/pairdist/core"
)

// Strategy selects how a distance matrix is filled.
type Strategy int

const (
	StrategyNaive Strategy = iota
	StrategyOptimized
)

// Strategies lists every strategy in a stable order.
var Strategies = []Strategy{StrategyNaive, StrategyOptimized}

func (s Strategy) String() string {
	switch s {
	case StrategyNaive:
		return "naive"
	case StrategyOptimized:
		return "optimized"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy: %q", name)
}

// Fill writes the distance matrix of xs and ys into distances using s.
func (s Strategy) Fill(distance core.PointDistanceFunc, xs, ys, distances []float32) {
	switch s {
	case StrategyNaive:
		NaiveFunc(distance, xs, ys, distances)
	case StrategyOptimized:
		OptimizedFunc(distance, xs, ys, distances)
	default:
		panic(fmt.Sprintf("unsupported strategy: %v", s))
	}
}

// Compute allocates an n*n buffer and fills it using s.
func Compute(s Strategy, distance core.PointDistanceFunc, xs, ys []float32) []float32 {
	n := core.MustMatch(xs, ys)
	distances := make([]float32, n*n)
	s.Fill(distance, xs, ys, distances)
	return distances
}

// ComputeNaive returns the Euclidean distance matrix of xs and ys computed by Naive.
func ComputeNaive(xs, ys []float32) []float32 {
	return Compute(StrategyNaive, core.Distance, xs, ys)
}

// ComputeOptimized returns the Euclidean distance matrix of xs and ys computed by Optimized.
func ComputeOptimized(xs, ys []float32) []float32 {
	return Compute(StrategyOptimized, core.Distance, xs, ys)
}
