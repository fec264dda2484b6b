//go:build ignore
// +build ignore

package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"

	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/example"
	"github.com/patrikhermansson/pairdist/pairwise"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set the logger to output to the console.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Start the pprof HTTP server on port 6060.
	// This will expose profiling endpoints at /debug/pprof/
	go func() {
		log.Info().Msg("Starting pprof server on :6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Error().Err(err).Msg("pprof server failed")
		}
	}()

	seed := core.GetSeed()
	for _, points := range []int{128, 1024, 4096} {
		BenchStrategies(points, 20, seed)
	}
}

func BenchStrategies(points, trials int, seed int64) {
	for _, metric := range []string{"euclidean", "squared_euclidean"} {
		summary, err := example.RunTrials(context.Background(), example.TrialOptions{
			Strategy: pairwise.StrategyOptimized,
			Metric:   metric,
			Points:   points,
			Trials:   trials,
			Workers:  runtime.NumCPU(),
			Seed:     seed,
			Progress: true,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Trials failed")
		}
		fmt.Printf("%d points, %s: naive %v, optimized %v, speedup %.2fx, failed %d\n",
			points, metric, summary.ReferenceTime, summary.StrategyTime, summary.Speedup, summary.Failed)
	}
}
