package render

import (
	"bytes"
	"strings"
	"testing"

	"chiscan/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestGlyphBuckets(t *testing.T) {
	cases := []struct {
		name string
		chi  float64
		want rune
	}{
		{name: "well below threshold", chi: 0.05, want: '.'},
		{name: "low bucket edge", chi: 0.10, want: '.'},
		{name: "near threshold", chi: 0.12, want: 'o'},
		{name: "threshold edge", chi: 0.15, want: 'o'},
		{name: "just above", chi: 0.18, want: '*'},
		{name: "upper bucket edge", chi: 0.20, want: '*'},
		{name: "far above", chi: 0.35, want: '#'},
	}

	for _, tc := range cases {
		if got := glyph(tc.chi); got != tc.want {
			t.Errorf("%s: glyph(%v) = %q, want %q", tc.name, tc.chi, got, tc.want)
		}
	}
}

func TestFieldGridAdapter(t *testing.T) {
	g := fieldGrid{
		xs: []float64{-1, 0, 1},
		ys: []float64{-2, 2},
		z: [][]float64{
			{0.1, 0.2, 0.3},
			{0.4, 0.5, 0.6},
		},
	}

	c, r := g.Dims()
	require.Equal(t, 3, c)
	require.Equal(t, 2, r)

	require.Equal(t, 0.0, g.X(1))
	require.Equal(t, 2.0, g.Y(1))
	require.Equal(t, 0.6, g.Z(2, 1), "Z addresses (column, row)")
}

func TestFieldMap(t *testing.T) {
	var buf bytes.Buffer
	err := FieldMap(&buf, -1, 1, -1, 1, 20)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Legend:")
	require.Contains(t, out, "y=+1.00", "top row carries the max-y caption")
	require.Contains(t, out, "y=-1.00", "bottom row carries the min-y caption")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 2 header lines, 1 blank, 20 map rows, 1 x-axis caption.
	require.Len(t, lines, 24)

	// The field is near zero at the center of a ±1 range and peaks toward
	// r = 1, so the corners land in the top bucket.
	mapRows := lines[3 : 3+20]
	require.Equal(t, byte('.'), mapRows[10][10], "center of the map stays in the low bucket")
	require.Equal(t, byte('#'), mapRows[0][0], "corner of the map exceeds the top bucket")
}

func TestFieldMapRejectsTinyWidth(t *testing.T) {
	var buf bytes.Buffer
	err := FieldMap(&buf, -1, 1, -1, 1, 1)
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}
