package scan_test

import (
	"context"
	"math"
	"testing"

	"chiscan/internal/scan"
	"chiscan/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func defaultOptions() scan.Options {
	return scan.Options{
		XMin: -0.5, XMax: 0.5,
		YMin: -0.5, YMax: 0.5,
		Points: 10,
	}
}

func TestRunShapesAndAggregates(t *testing.T) {
	res, err := scan.Run(context.Background(), defaultOptions())
	require.NoError(t, err)

	require.Len(t, res.X, 10)
	require.Len(t, res.Y, 10)
	require.Len(t, res.Chi, 10)
	require.Len(t, res.Valid, 10)
	for i := 0; i < 10; i++ {
		require.Len(t, res.X[i], 10)
		require.Len(t, res.Y[i], 10)
		require.Len(t, res.Chi[i], 10)
		require.Len(t, res.Valid[i], 10)
	}

	rows, cols := res.Dims()
	require.Equal(t, 10, rows)
	require.Equal(t, 10, cols)

	require.Equal(t, 100, res.TotalPoints)
	require.GreaterOrEqual(t, res.ValidFraction, 0.0)
	require.LessOrEqual(t, res.ValidFraction, 1.0)

	count := 0
	for _, row := range res.Valid {
		for _, v := range row {
			if v {
				count++
			}
		}
	}
	require.Equal(t, count, res.ZeroViolationCount)
	require.InDelta(t, float64(count)/100.0, res.ValidFraction, 1e-15)

	require.NotEqual(t, uuid.Nil, res.RunID)
}

func TestRunAxisCorrespondence(t *testing.T) {
	res, err := scan.Run(context.Background(), defaultOptions())
	require.NoError(t, err)

	// meshgrid layout: every row repeats the x axis, every column the y axis.
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			require.Equal(t, res.X[0][j], res.X[i][j], "x must be constant down a column")
			require.Equal(t, res.Y[i][0], res.Y[i][j], "y must be constant along a row")
		}
	}

	require.InDelta(t, -0.5, res.X[0][0], 1e-12)
	require.InDelta(t, 0.5, res.X[0][9], 1e-12)
	require.InDelta(t, -0.5, res.Y[0][0], 1e-12)
	require.InDelta(t, 0.5, res.Y[9][0], 1e-12)
}

func TestRunSinglePointResolvesToRangeMinimum(t *testing.T) {
	res, err := scan.Run(context.Background(), scan.Options{
		XMin: 0.2, XMax: 0.9,
		YMin: -0.3, YMax: 0.7,
		Points: 1,
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.TotalPoints)
	require.Equal(t, 0.2, res.X[0][0])
	require.Equal(t, -0.3, res.Y[0][0])
}

func TestRunNearOriginMostlyValid(t *testing.T) {
	res, err := scan.Run(context.Background(), scan.Options{
		XMin: -0.1, XMax: 0.1,
		YMin: -0.1, YMax: 0.1,
		Points: 20,
	})
	require.NoError(t, err)
	require.Greater(t, res.ValidFraction, 0.9, "the region around the origin stays under the boundary")
}

func TestRunInvalidOptions(t *testing.T) {
	valid := defaultOptions()

	cases := []struct {
		name   string
		mutate func(*scan.Options)
	}{
		{
			name:   "zero points",
			mutate: func(o *scan.Options) { o.Points = 0 },
		},
		{
			name:   "negative points",
			mutate: func(o *scan.Options) { o.Points = -3 },
		},
		{
			name:   "points above cap",
			mutate: func(o *scan.Options) { o.Points = scan.MaxPoints + 1 },
		},
		{
			name:   "inverted x range",
			mutate: func(o *scan.Options) { o.XMin, o.XMax = o.XMax, o.XMin },
		},
		{
			name:   "inverted y range",
			mutate: func(o *scan.Options) { o.YMin, o.YMax = o.YMax, o.YMin },
		},
		{
			name:   "non-finite bound",
			mutate: func(o *scan.Options) { o.XMax = math.NaN() },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := valid
			tc.mutate(&opts)

			_, err := scan.Run(context.Background(), opts)
			require.ErrorIs(t, err, serrors.ErrInvalidArgument)
		})
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scan.Run(ctx, defaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	opts := defaultOptions()
	opts.Points = 32

	opts.Workers = 1
	sequential, err := scan.Run(context.Background(), opts)
	require.NoError(t, err)

	opts.Workers = 8
	parallel, err := scan.Run(context.Background(), opts)
	require.NoError(t, err)

	require.Equal(t, sequential.Chi, parallel.Chi, "evaluation order must not affect grid contents")
	require.Equal(t, sequential.Valid, parallel.Valid)
	require.Equal(t, sequential.ZeroViolationCount, parallel.ZeroViolationCount)
}
