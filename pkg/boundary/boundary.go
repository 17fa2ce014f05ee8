// Package boundary classifies scalar field values against the fixed
// chi = 0.15 threshold. The classification is the only decision rule in
// the toolkit: a field value is acceptable as long as it does not exceed
// the threshold by more than the tolerance.
package boundary

import "math"

const (
	// Threshold is the critical chi value against which field samples are
	// classified.
	Threshold = 0.15

	// Tolerance extends the acceptable side of the threshold. A chi value
	// up to Threshold+Tolerance still classifies as valid.
	Tolerance = 0.001
)

// Condition is the outcome of classifying a single chi value.
type Condition struct {
	// Chi is the classified field value, echoed back for reporting.
	Chi float64 `json:"chi"`
	// Valid reports whether the value stays at or below the threshold
	// (within tolerance).
	Valid bool `json:"valid"`
	// Distance is the absolute distance from the threshold, regardless of
	// side.
	Distance float64 `json:"distanceFromBoundary"`
}

// Classify applies the threshold rule to a chi value.
//
// The test is one-sided: only values above Threshold+Tolerance are
// rejected. Values arbitrarily far below the threshold remain valid. This
// matches the field's range (chi ≥ 0 for the default energy scale) and is
// intentional, so don't be tempted to reject on distance alone.
//
// chi must be finite; NaN and Inf inputs produce unspecified results.
func Classify(chi float64) Condition {
	return Condition{
		Chi:      chi,
		Valid:    chi <= Threshold+Tolerance,
		Distance: math.Abs(chi - Threshold),
	}
}
