package example

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/pairwise"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// CheckResult holds the outcome of comparing a strategy against the naive reference on one point set.
type CheckResult struct {
	Name          string        `yaml:"name"`
	Points        int           `yaml:"points"`
	Strategy      string        `yaml:"strategy"`
	Metric        string        `yaml:"metric"`
	Mismatches    int           `yaml:"mismatches"`
	Invariant     string        `yaml:"invariant,omitempty"`
	MaxDeviation  float64       `yaml:"maxDeviation"`
	ReferenceTime time.Duration `yaml:"referenceTime"`
	StrategyTime  time.Duration `yaml:"strategyTime"`
}

// OK reports whether the strategy matched the reference and the matrix kept its invariants.
func (r CheckResult) OK() bool {
	return r.Mismatches == 0 && r.Invariant == ""
}

// Check runs the naive reference and the given strategy on points and compares them.
func Check(name string, points core.PointSet, strategy pairwise.Strategy, metric string) (CheckResult, error) {
	distance, err := core.GetDistanceFunc(metric)
	if err != nil {
		return CheckResult{}, err
	}
	if _, err := core.NewPointSet(points.Xs, points.Ys); err != nil {
		return CheckResult{}, fmt.Errorf("%s: %w", name, err)
	}
	return check(name, points, strategy, metric, distance), nil
}

func check(name string, points core.PointSet, strategy pairwise.Strategy, metric string, distance core.PointDistanceFunc) CheckResult {
	n := points.Len()
	result := CheckResult{
		Name:     name,
		Points:   n,
		Strategy: strategy.String(),
		Metric:   metric,
	}

	start := time.Now()
	reference := pairwise.Compute(pairwise.StrategyNaive, distance, points.Xs, points.Ys)
	result.ReferenceTime = time.Since(start)

	start = time.Now()
	got := pairwise.Compute(strategy, distance, points.Xs, points.Ys)
	result.StrategyTime = time.Since(start)

	for _, cell := range pairwise.Diff(got, reference, n) {
		log.Debug().Str("check", name).Int("row", cell.Row).Int("col", cell.Col).
			Float32("got", cell.Got).Float32("want", cell.Want).Msg("Distance mismatch")
		result.Mismatches++
	}
	if err := pairwise.Verify(got, n); err != nil {
		result.Invariant = err.Error()
	}
	if metric == "euclidean" {
		result.MaxDeviation = firstRowDeviation(points, got)
	}
	return result
}

// firstRowDeviation measures the largest gap between the first matrix row and
// the same distances computed in double precision.
func firstRowDeviation(points core.PointSet, distances []float32) float64 {
	n := points.Len()
	if n == 0 {
		return 0
	}
	x0, y0 := points.At(0)
	p := []float64{float64(x0), float64(y0)}
	q := make([]float64, 2)
	var deviation float64
	for j := 0; j < n; j++ {
		x, y := points.At(j)
		q[0], q[1] = float64(x), float64(y)
		deviation = math.Max(deviation, math.Abs(floats.Distance(p, q, 2)-float64(distances[j])))
	}
	return deviation
}

// TrialOptions configures RunTrials.
type TrialOptions struct {
	Strategy pairwise.Strategy
	Metric   string
	Points   int
	Trials   int
	Workers  int
	// Seed of the first trial; trial t uses Seed+t. Zero asks core.GetSeed.
	Seed int64
	// Scale bounds every coordinate to [-Scale, Scale). Zero means 100.
	Scale    float32
	Progress bool
}

// Summary aggregates the results of RunTrials.
type Summary struct {
	Trials        int           `yaml:"trials"`
	Failed        int           `yaml:"failed"`
	Points        int           `yaml:"points"`
	Strategy      string        `yaml:"strategy"`
	Metric        string        `yaml:"metric"`
	Seed          int64         `yaml:"seed"`
	ReferenceTime time.Duration `yaml:"referenceTime"`
	StrategyTime  time.Duration `yaml:"strategyTime"`
	Speedup       float64       `yaml:"speedup"`
	Failures      []CheckResult `yaml:"failures,omitempty"`
}

// RunTrials checks opts.Trials random point sets on a pool of opts.Workers goroutines.
// Every trial owns its points and buffers. When opts.Progress is set, a progress bar is displayed.
func RunTrials(ctx context.Context, opts TrialOptions) (Summary, error) {
	distance, err := core.GetDistanceFunc(opts.Metric)
	if err != nil {
		return Summary{}, err
	}
	if opts.Points < 1 || opts.Trials < 0 || opts.Workers < 1 {
		return Summary{}, fmt.Errorf("invalid trial options: points=%d trials=%d workers=%d",
			opts.Points, opts.Trials, opts.Workers)
	}
	if opts.Seed == 0 {
		opts.Seed = core.GetSeed()
	}
	if opts.Scale == 0 {
		opts.Scale = 100
	}

	log.Info().Msgf("Running %d trials of %d points (%s, %s) using %d workers",
		opts.Trials, opts.Points, opts.Strategy, opts.Metric, opts.Workers)

	var bar *progressbar.ProgressBar
	if opts.Progress && opts.Trials > 0 {
		bar = progressbar.Default(int64(opts.Trials))
	}

	results := make([]CheckResult, opts.Trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for t := 0; t < opts.Trials; t++ {
		if gctx.Err() != nil {
			break
		}
		t := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(opts.Seed + int64(t)))
			points := RandomPoints(rng, opts.Points, opts.Scale)
			results[t] = check(fmt.Sprintf("trial-%d", t), points, opts.Strategy, opts.Metric, distance)
			if bar != nil {
				if err := bar.Add(1); err != nil {
					log.Debug().Err(err).Msg("Progress bar update failed")
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Trials:   opts.Trials,
		Points:   opts.Points,
		Strategy: opts.Strategy.String(),
		Metric:   opts.Metric,
		Seed:     opts.Seed,
	}
	for _, res := range results {
		summary.ReferenceTime += res.ReferenceTime
		summary.StrategyTime += res.StrategyTime
		if !res.OK() {
			summary.Failed++
			summary.Failures = append(summary.Failures, res)
		}
	}
	if summary.StrategyTime > 0 {
		summary.Speedup = float64(summary.ReferenceTime) / float64(summary.StrategyTime)
	}

	log.Info().Int("failed", summary.Failed).Float64("speedup", summary.Speedup).Msg("Trials finished")
	return summary, nil
}
