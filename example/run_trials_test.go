package example

import (
	"context"
	"testing"

	"github.com/patrikhermansson/pairdist/core"
	"github.com/patrikhermansson/pairdist/pairwise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSamplePoints(t *testing.T) {
	for _, s := range pairwise.Strategies {
		t.Run(s.String(), func(t *testing.T) {
			res, err := Check("sample", SamplePoints(), s, "euclidean")
			require.NoError(t, err)
			assert.True(t, res.OK(), "%+v", res)
			assert.Equal(t, 5, res.Points)
			assert.Less(t, res.MaxDeviation, 1e-5)
		})
	}
}

func TestCheckErrors(t *testing.T) {
	_, err := Check("sample", SamplePoints(), pairwise.StrategyOptimized, "cosine")
	assert.ErrorIs(t, err, core.ErrUnknownDistance)

	bad := core.PointSet{Xs: []float32{1, 2}, Ys: []float32{1}}
	_, err = Check("bad", bad, pairwise.StrategyOptimized, "euclidean")
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
}

func TestRunTrials(t *testing.T) {
	summary, err := RunTrials(context.Background(), TrialOptions{
		Strategy: pairwise.StrategyOptimized,
		Metric:   "manhattan",
		Points:   33,
		Trials:   20,
		Workers:  4,
		Seed:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, summary.Trials)
	assert.Zero(t, summary.Failed)
	assert.Empty(t, summary.Failures)
	assert.Equal(t, int64(5), summary.Seed)
	assert.Equal(t, "optimized", summary.Strategy)
}

func TestRunTrialsZeroTrials(t *testing.T) {
	summary, err := RunTrials(context.Background(), TrialOptions{
		Strategy: pairwise.StrategyNaive,
		Metric:   "euclidean",
		Points:   4,
		Workers:  1,
		Seed:     1,
		Progress: true,
	})
	require.NoError(t, err)
	assert.Zero(t, summary.Trials)
	assert.Zero(t, summary.Speedup)
}

func TestRunTrialsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunTrials(ctx, TrialOptions{
		Strategy: pairwise.StrategyOptimized,
		Metric:   "euclidean",
		Points:   8,
		Trials:   10,
		Workers:  2,
		Seed:     1,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunTrialsInvalidOptions(t *testing.T) {
	_, err := RunTrials(context.Background(), TrialOptions{Metric: "euclidean", Points: 0, Workers: 1})
	assert.Error(t, err)
	_, err = RunTrials(context.Background(), TrialOptions{Metric: "nope", Points: 1, Workers: 1})
	assert.ErrorIs(t, err, core.ErrUnknownDistance)
}
