package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits t to the interval [min,max].
func Clamp[T constraints.Ordered](t, min, max T) T {
	if t < min {
		return min
	}
	if t > max {
		return max
	}
	return t
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
