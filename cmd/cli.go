package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/patrikhermansson/pairdist/config"
	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/example"
	"github.com/patrikhermansson/pairdist/pairwise"
	"github.com/patrikhermansson/pairdist/pkg/report"
	"github.com/rs/zerolog/log"
)

// ErrChecksFailed is returned by Execute when any check or trial disagreed with the naive reference.
var ErrChecksFailed = errors.New("distance checks failed")

// Execute runs the CLI code: the sample self-check, an optional CSV point
// file and the random trials, then writes the report to w.
func Execute(ctx context.Context, cfg config.ConfigMap, w io.Writer) error {
	strategy, err := pairwise.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	features := core.CPUFeatures()
	log.Info().Interface("cpu", features).Msg("Detected CPU features")

	sample := example.SamplePoints()
	r := report.Report{
		CPU:    features,
		Sample: example.FormatMatrix(pairwise.ComputeOptimized(sample.Xs, sample.Ys), sample.Len(), 10),
	}

	res, err := example.Check("sample", sample, strategy, cfg.Metric)
	if err != nil {
		return err
	}
	r.Checks = append(r.Checks, res)

	if cfg.PointsFile != "" {
		points, err := example.LoadPoints(cfg.PointsFile, false)
		if err != nil {
			return err
		}
		res, err := example.Check(cfg.PointsFile, points, strategy, cfg.Metric)
		if err != nil {
			return err
		}
		r.Checks = append(r.Checks, res)
	}

	if cfg.Trials > 0 {
		summary, err := example.RunTrials(ctx, example.TrialOptions{
			Strategy: strategy,
			Metric:   cfg.Metric,
			Points:   cfg.Points,
			Trials:   cfg.Trials,
			Workers:  cfg.Workers,
			Seed:     cfg.Seed,
			Progress: cfg.Format == "text",
		})
		if err != nil {
			return fmt.Errorf("trials: %w", err)
		}
		r.Trials = &summary
	}

	if err := report.Write(w, r, cfg.Format); err != nil {
		return err
	}
	if !r.OK() {
		return ErrChecksFailed
	}
	return nil
}
