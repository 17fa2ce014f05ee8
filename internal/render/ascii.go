package render

import (
	"fmt"
	"io"

	"chiscan/pkg/boundary"
	"chiscan/pkg/field"
	"chiscan/pkg/serrors"

	"gonum.org/v1/gonum/floats"
)

// Glyphs used by the text field map, keyed by chi value. The buckets are a
// presentation choice: one step below the threshold, the threshold band
// itself, a step above it, and everything beyond.
const (
	glyphLow      = '.' // chi <= 0.10
	glyphNear     = 'o' // chi <= threshold
	glyphAbove    = '*' // chi <= 0.20
	glyphFarAbove = '#' // chi > 0.20
)

// glyph buckets a chi value into one of the four map symbols.
func glyph(chi float64) rune {
	switch {
	case chi <= 0.10:
		return glyphLow
	case chi <= boundary.Threshold:
		return glyphNear
	case chi <= 0.20:
		return glyphAbove
	default:
		return glyphFarAbove
	}
}

// FieldMap writes an ASCII rendering of the field over the given ranges to
// w. Rows are printed from the maximum y downward so the map reads like a
// conventional plot, and the first, middle and last rows carry y-axis
// captions. width is the per-axis character count and must be at least 2.
func FieldMap(w io.Writer, xMin, xMax, yMin, yMax float64, width int) error {
	if width < 2 {
		return serrors.With(serrors.ErrInvalidArgument, "map width must be >= 2, got %d", width)
	}

	xs := floats.Span(make([]float64, width), xMin, xMax)
	ys := floats.Span(make([]float64, width), yMin, yMax)

	fmt.Fprintf(w, "Parameter space map (chi values):\n")
	fmt.Fprintf(w, "Legend: %c = chi<=0.10, %c = chi<=%.2f, %c = chi<=0.20, %c = chi>0.20\n\n",
		glyphLow, glyphNear, boundary.Threshold, glyphAbove, glyphFarAbove)

	line := make([]rune, width)
	for i := width - 1; i >= 0; i-- {
		y := ys[i]
		for j, x := range xs {
			line[j] = glyph(field.Chi(x, y))
		}

		switch i {
		case width - 1:
			fmt.Fprintf(w, "%s  y=%+.2f\n", string(line), yMax)
		case width / 2:
			fmt.Fprintf(w, "%s  y=%+.2f\n", string(line), y)
		case 0:
			fmt.Fprintf(w, "%s  y=%+.2f\n", string(line), yMin)
		default:
			fmt.Fprintf(w, "%s\n", string(line))
		}
	}

	pad := width - 14
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(w, "x=%+.2f%*s x=%+.2f\n", xMin, pad, "", xMax)

	return nil
}
