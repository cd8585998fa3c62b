package utils

import (
	"math"
)

// Minmod returns the smaller magnitude argument when both share a sign, zero otherwise.
func Minmod(a, b float64) float64 {
	switch {
	case a > 0 && b > 0:
		return math.Min(a, b)
	case a < 0 && b < 0:
		return math.Max(a, b)
	default:
		return 0
	}
}

func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
