// Package render contains the reporting consumers of the toolkit: an
// ASCII field map for terminals and PNG plots drawn with gonum/plot. It
// only reads evaluator output and scan results; no rendering concern leaks
// back into the numerical core.
package render

// fieldGrid adapts sampled field values to the plotter.GridXYZ interface.
// Rows follow the y axis and columns the x axis, matching the scan
// package's meshgrid layout, while GridXYZ addresses values as (c, r).
type fieldGrid struct {
	xs, ys []float64
	z      [][]float64
}

func (g fieldGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g fieldGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g fieldGrid) X(c int) float64    { return g.xs[c] }
func (g fieldGrid) Y(r int) float64    { return g.ys[r] }
