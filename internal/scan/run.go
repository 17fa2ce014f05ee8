package scan

import (
	"context"
	"fmt"
	"runtime"

	"chiscan/pkg/boundary"
	"chiscan/pkg/field"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Result is the aggregate outcome of a parameter-space sweep.
//
// The four grids share the shape Points×Points and a meshgrid layout: row
// index i selects the y coordinate, column index j the x coordinate, so
// X[i][j], Y[i][j], Chi[i][j] and Valid[i][j] all describe the same node.
type Result struct {
	// RunID identifies this sweep in logs and report headers.
	RunID uuid.UUID

	// X and Y hold the node coordinates.
	X, Y [][]float64
	// Chi holds the field value at each node.
	Chi [][]float64
	// Valid holds the boundary classification at each node.
	Valid [][]bool

	// TotalPoints is the number of grid nodes, Points².
	TotalPoints int
	// ZeroViolationCount is the number of nodes classified valid.
	ZeroViolationCount int
	// ValidFraction is ZeroViolationCount / TotalPoints, in [0, 1].
	ValidFraction float64
}

// Dims returns the grid shape as (rows, cols). Rows follow the y axis,
// columns the x axis.
func (r *Result) Dims() (rows, cols int) {
	return len(r.Y), len(r.X[0])
}

// Run evaluates the field at every node of an evenly spaced grid spanning
// the configured ranges and classifies each value against the boundary.
//
// Rows are evaluated concurrently, bounded by Options.Workers. Completion
// order does not matter: each goroutine owns a disjoint set of rows, so
// coordinate correspondence in the result is independent of scheduling.
// Run returns early with ctx.Err() when the context is canceled.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid scan options: %w", err)
	}

	n := opts.Points
	xs := linspace(opts.XMin, opts.XMax, n)
	ys := linspace(opts.YMin, opts.YMax, n)

	res := &Result{
		RunID:       uuid.New(),
		X:           make([][]float64, n),
		Y:           make([][]float64, n),
		Chi:         make([][]float64, n),
		Valid:       make([][]bool, n),
		TotalPoints: n * n,
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err() //nolint: wrapcheck
			default:
			}

			xr := make([]float64, n)
			yr := make([]float64, n)
			cr := make([]float64, n)
			vr := make([]bool, n)

			y := ys[i]
			for j, x := range xs {
				chi := field.Chi(x, y)
				cond := boundary.Classify(chi)

				xr[j] = x
				yr[j] = y
				cr[j] = chi
				vr[j] = cond.Valid
			}

			res.X[i] = xr
			res.Y[i] = yr
			res.Chi[i] = cr
			res.Valid[i] = vr

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan interrupted: %w", err)
	}

	for _, row := range res.Valid {
		for _, v := range row {
			if v {
				res.ZeroViolationCount++
			}
		}
	}
	res.ValidFraction = float64(res.ZeroViolationCount) / float64(res.TotalPoints)

	return res, nil
}
