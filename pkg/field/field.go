// Package field implements the closed-form scalar field chi and the
// derived geometric quantities built on top of it: the 2D→3D coordinate
// lift and the g00 metric perturbation. All functions are pure and total
// over finite inputs; NaN and Inf propagate through the arithmetic
// unchanged, so callers must pass finite coordinates.
package field

import "math"

const (
	// ReferenceEnergyScale is the fixed normalizing denominator inside chi.
	ReferenceEnergyScale = 1e-9

	// DefaultVacuumEnergy is the energy scale used when the caller does not
	// supply one explicitly.
	DefaultVacuumEnergy = 1e-9
)

// Point3 is an immutable 3D coordinate produced by the lift transform.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Chi evaluates the scalar field at (x, y) with the default energy scale.
func Chi(x, y float64) float64 {
	return ChiEnergy(x, y, DefaultVacuumEnergy)
}

// ChiEnergy evaluates the scalar field at (x, y) with an explicit energy
// scale:
//
//	chi = (energyScale / ReferenceEnergyScale) * sqrt(r²) / (1 + r²)
//
// where r² = x² + y². The field depends on the coordinates only through
// r², so it is symmetric in x and y. It rises from zero at the origin,
// peaks at r = 1 and decays back toward zero at large radius, and scales
// linearly with energyScale.
//
// The origin returns exactly 0.0. The explicit special case is kept even
// though the formula would evaluate to zero anyway, so that exact-equality
// callers never observe rounding residue.
func ChiEnergy(x, y, energyScale float64) float64 {
	r2 := x*x + y*y
	if r2 == 0 {
		return 0.0
	}

	return (energyScale / ReferenceEnergyScale) * math.Sqrt(r2) / (1 + r2)
}

// Lift maps a 2D coordinate into 3D space using the default vacuum energy.
func Lift(x, y float64) Point3 {
	return LiftEnergy(x, y, DefaultVacuumEnergy)
}

// LiftEnergy maps a 2D coordinate into 3D space. The first two coordinates
// are preserved exactly; the third emerges from the vacuum energy and the
// field value at the source point:
//
//	z = sqrt(vacuumEnergy) * (x² + y²) / (1 + chi)
//
// The origin maps to exactly (0, 0, 0). For any other point with a
// positive vacuum energy, z is strictly positive and grows monotonically
// with vacuumEnergy.
func LiftEnergy(x, y, vacuumEnergy float64) Point3 {
	chi := ChiEnergy(x, y, vacuumEnergy)

	return Point3{
		X: x,
		Y: y,
		Z: math.Sqrt(vacuumEnergy) * (x*x + y*y) / (1 + chi),
	}
}

// MetricG00 computes the g00 component of the metric perturbation at a 3D
// point, the deviation from the flat baseline of 1.0:
//
//	g00 = 1 + 2*phi,  phi = chi * r / (1 + r),  r = sqrt(x² + y² + z²)
//
// chi is evaluated from x and y only; z contributes to the distance factor
// but not to the field. That asymmetry is part of the formula's contract,
// not an oversight. The origin returns exactly 1.0, and the result is
// always ≥ 1 since chi ≥ 0 for the default energy scale.
func MetricG00(x, y, z float64) float64 {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 1.0
	}

	chi := Chi(x, y)
	phi := chi * r / (1 + r)

	return 1.0 + 2.0*phi
}
