package wheel

import "math"

// EaseInOutCubic maps linear progress to eased progress
// Cubic ease-in over the first half, cubic ease-out over the second;
// p is clamped to [0, 1]
func EaseInOutCubic(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	case p < 0.5:
		return 4 * p * p * p
	default:
		return 1 - math.Pow(-2*p+2, 3)/2
	}
}
