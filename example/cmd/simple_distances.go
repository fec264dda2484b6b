//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"

	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/example"
	"github.com/patrikhermansson/pairdist/pairwise"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	// Set the logger to output to the console.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	points := example.SamplePoints()
	n := points.Len()
	fmt.Printf("Computing distances between %d points: xs=%v ys=%v\n", n, points.Xs, points.Ys)

	// Fill a caller-owned buffer with each strategy.
	naive := make([]float32, n*n)
	pairwise.Naive(points.Xs, points.Ys, naive)
	fmt.Print("Naive:\n", example.FormatMatrix(naive, n, n))

	optimized := make([]float32, n*n)
	pairwise.Optimized(points.Xs, points.Ys, optimized)
	fmt.Print("Optimized:\n", example.FormatMatrix(optimized, n, n))

	if cells := pairwise.Diff(optimized, naive, n); len(cells) > 0 {
		log.Fatal().Msgf("Strategies disagree on %d entries, first at %+v", len(cells), cells[0])
	}
	if err := pairwise.Verify(optimized, n); err != nil {
		log.Fatal().Err(err).Msg("Invariant check failed")
	}
	fmt.Println("Both strategies agree.")

	// Any registered metric works with both strategies.
	for _, name := range []string{"manhattan", "chebyshev"} {
		d := pairwise.Compute(pairwise.StrategyOptimized, core.Distances[name], points.Xs, points.Ys)
		fmt.Printf("%s:\n%s", name, example.FormatMatrix(d, n, n))
	}

	// Mismatched inputs are a programming error and panic.
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("Recovered:", r)
		}
	}()
	pairwise.ComputeOptimized(points.Xs, points.Ys[:3])
}
