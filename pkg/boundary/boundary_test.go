package boundary_test

import (
	"testing"

	"chiscan/pkg/boundary"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		chi      float64
		valid    bool
		distance float64
	}{
		{
			name:     "below threshold",
			chi:      0.10,
			valid:    true,
			distance: 0.05,
		},
		{
			name:     "at threshold",
			chi:      0.15,
			valid:    true,
			distance: 0.0,
		},
		{
			name:     "above threshold",
			chi:      0.20,
			valid:    false,
			distance: 0.05,
		},
		{
			name:     "within tolerance",
			chi:      0.150,
			valid:    true,
			distance: 0.0,
		},
		{
			name:     "just outside tolerance",
			chi:      0.152,
			valid:    false,
			distance: 0.002,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := boundary.Classify(tc.chi)
			require.Equal(t, tc.chi, c.Chi, "condition must echo the classified value")
			require.Equal(t, tc.valid, c.Valid)
			require.InDelta(t, tc.distance, c.Distance, 1e-12)
		})
	}
}

func TestClassifyIsOneSided(t *testing.T) {
	// The rule only rejects values above the threshold. A chi far below it,
	// even a negative one, still classifies as valid with a large distance.
	c := boundary.Classify(-5.0)
	require.True(t, c.Valid)
	require.InDelta(t, 5.15, c.Distance, 1e-12)
}
