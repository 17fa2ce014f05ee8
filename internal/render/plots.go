package render

import (
	"fmt"
	"math"
	"path/filepath"

	"chiscan/internal/scan"
	"chiscan/pkg/boundary"
	"chiscan/pkg/field"
	"chiscan/pkg/serrors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Output file names, fixed so repeated runs overwrite rather than pile up.
const (
	chiDistributionFile = "chi_distribution.png"
	liftElevationFile   = "lift_elevation.png"
	radialProfileFile   = "radial_profile.png"
)

// Plots renders PNG figures of the field into OutputDir.
type Plots struct {
	// OutputDir is the directory plot files are written into.
	OutputDir string
	// Resolution is the per-axis sample count for plot grids. Must be >= 2.
	Resolution int
}

func (p Plots) validate() error {
	if p.Resolution < 2 {
		return serrors.With(serrors.ErrInvalidArgument, "plot resolution must be >= 2, got %d", p.Resolution)
	}

	return nil
}

// ChiDistribution draws a heatmap of the chi values from a finished sweep
// and overlays the boundary contour. It returns the path of the written
// file.
func (p Plots) ChiDistribution(res *scan.Result) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}

	rows, cols := res.Dims()
	xs := make([]float64, cols)
	ys := make([]float64, rows)
	for j := range xs {
		xs[j] = res.X[0][j]
	}
	for i := range ys {
		ys[i] = res.Y[i][0]
	}
	g := fieldGrid{xs: xs, ys: ys, z: res.Chi}

	pl := plot.New()
	pl.Title.Text = "Chi distribution in parameter space"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"

	pl.Add(plotter.NewHeatMap(g, palette.Heat(16, 1)))
	pl.Add(plotter.NewContour(g, []float64{boundary.Threshold}, palette.Heat(2, 1)))

	path := filepath.Join(p.OutputDir, chiDistributionFile)
	if err := pl.Save(7*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("could not save chi distribution plot: %w", err)
	}

	return path, nil
}

// LiftElevation draws a heatmap of the lifted z coordinate over the given
// ranges, showing how the third dimension emerges away from the origin.
func (p Plots) LiftElevation(xMin, xMax, yMin, yMax float64) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}

	xs := floats.Span(make([]float64, p.Resolution), xMin, xMax)
	ys := floats.Span(make([]float64, p.Resolution), yMin, yMax)

	z := make([][]float64, len(ys))
	for i, y := range ys {
		row := make([]float64, len(xs))
		for j, x := range xs {
			row[j] = field.Lift(x, y).Z
		}
		z[i] = row
	}

	pl := plot.New()
	pl.Title.Text = "Lift elevation (z after 2D to 3D transform)"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"

	pl.Add(plotter.NewHeatMap(fieldGrid{xs: xs, ys: ys, z: z}, palette.Heat(16, 1)))

	path := filepath.Join(p.OutputDir, liftElevationFile)
	if err := pl.Save(7*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("could not save lift elevation plot: %w", err)
	}

	return path, nil
}

// RadialProfile draws chi as a function of the radius along the x = y
// diagonal, with the boundary threshold and the critical radius marked.
func (p Plots) RadialProfile(maxRadius float64) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}
	if maxRadius <= 0 {
		return "", serrors.With(serrors.ErrInvalidArgument, "max radius must be > 0, got %v", maxRadius)
	}

	rs := floats.Span(make([]float64, p.Resolution), 0, maxRadius)
	profile := make(plotter.XYs, len(rs))
	for i, r := range rs {
		d := r / math.Sqrt2 // along x = y
		profile[i].X = r
		profile[i].Y = field.Chi(d, d)
	}

	pl := plot.New()
	pl.Title.Text = "Radial profile of chi"
	pl.X.Label.Text = "r = sqrt(x² + y²)"
	pl.Y.Label.Text = "chi"

	line, err := plotter.NewLine(profile)
	if err != nil {
		return "", fmt.Errorf("could not build profile line: %w", err)
	}
	pl.Add(line)
	pl.Legend.Add("chi(r)", line)

	threshold, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: boundary.Threshold},
		{X: maxRadius, Y: boundary.Threshold},
	})
	if err != nil {
		return "", fmt.Errorf("could not build threshold line: %w", err)
	}
	threshold.Dashes = plotutil.DefaultDashes[1]
	pl.Add(threshold)
	pl.Legend.Add(fmt.Sprintf("threshold %.2f", boundary.Threshold), threshold)

	if rc, ok := field.CriticalRadius(boundary.Threshold); ok && rc <= maxRadius {
		marker, err := plotter.NewLine(plotter.XYs{
			{X: rc, Y: 0},
			{X: rc, Y: field.Chi(1/math.Sqrt2, 1/math.Sqrt2)},
		})
		if err != nil {
			return "", fmt.Errorf("could not build critical radius marker: %w", err)
		}
		marker.Dashes = plotutil.DefaultDashes[2]
		pl.Add(marker)
		pl.Legend.Add(fmt.Sprintf("critical radius %.3f", rc), marker)
	}

	path := filepath.Join(p.OutputDir, radialProfileFile)
	if err := pl.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("could not save radial profile plot: %w", err)
	}

	return path, nil
}
