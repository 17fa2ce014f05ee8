// Package scan sweeps the scalar field over a dense 2D grid and
// aggregates how much of the sampled parameter space stays inside the
// boundary. Every grid node is independent, so rows are evaluated in
// parallel while the returned grids keep strict row/column correspondence
// to the coordinate axes.
package scan

import (
	"math"

	"chiscan/internal/config"
	"chiscan/pkg/serrors"

	"gonum.org/v1/gonum/floats"
)

// MaxPoints caps the per-axis sample count. The grid allocation grows
// quadratically; 4096 per axis is already a 16.7M-node sweep.
const MaxPoints = 4096

// Options configure a parameter-space sweep.
type Options struct {
	// XMin and XMax bound the x axis, both endpoints included in the grid.
	XMin, XMax float64
	// YMin and YMax bound the y axis, both endpoints included in the grid.
	YMin, YMax float64
	// Points is the number of samples per axis. The sweep evaluates
	// Points² nodes. Must be in [1, MaxPoints].
	Points int
	// Workers bounds the goroutines evaluating grid rows. Values < 1 fall
	// back to GOMAXPROCS.
	Workers int
}

// NewOptions constructs sweep Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		XMin:    cfg.Scan.XMin,
		XMax:    cfg.Scan.XMax,
		YMin:    cfg.Scan.YMin,
		YMax:    cfg.Scan.YMax,
		Points:  cfg.Scan.Points,
		Workers: cfg.Scan.Workers,
	}
}

// validate rejects option combinations that cannot form a meaningful grid.
func (o Options) validate() error {
	if o.Points < 1 {
		return serrors.With(serrors.ErrInvalidArgument, "points must be >= 1, got %d", o.Points)
	}
	if o.Points > MaxPoints {
		return serrors.With(serrors.ErrInvalidArgument, "points must be <= %d, got %d", MaxPoints, o.Points)
	}
	for _, b := range []float64{o.XMin, o.XMax, o.YMin, o.YMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return serrors.With(serrors.ErrInvalidArgument, "range bounds must be finite")
		}
	}
	if o.XMin > o.XMax {
		return serrors.With(serrors.ErrInvalidArgument, "x range inverted: min %v > max %v", o.XMin, o.XMax)
	}
	if o.YMin > o.YMax {
		return serrors.With(serrors.ErrInvalidArgument, "y range inverted: min %v > max %v", o.YMin, o.YMax)
	}

	return nil
}

// linspace returns n evenly spaced samples spanning [min, max] inclusive.
// A single sample resolves to the range minimum.
func linspace(min, max float64, n int) []float64 {
	if n == 1 {
		return []float64{min}
	}

	return floats.Span(make([]float64, n), min, max)
}
