package field

import "math"

// criticalIterations bounds the bisection loop. 60 halvings of a unit
// interval land well below float64 resolution.
const criticalIterations = 60

// chiRadial evaluates chi at radius r along the x = y diagonal with the
// default energy scale. Chi depends only on the radius, so the diagonal is
// as good as any direction.
func chiRadial(r float64) float64 {
	d := r / math.Sqrt2

	return Chi(d, d)
}

// CriticalRadius locates the radius at which chi crosses the given target
// value. Chi is strictly increasing on [0, 1] with chi(0) = 0 and a peak
// of 0.5 at r = 1, so a bisection on that interval finds the unique
// crossing. The second return value is false when the target lies outside
// (0, 0.5] and no crossing exists.
func CriticalRadius(target float64) (float64, bool) {
	if target <= 0 || target > chiRadial(1) {
		return 0, false
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < criticalIterations; i++ {
		mid := (lo + hi) / 2
		if chiRadial(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2, true
}
