package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based. The
// tolerance is relative once the values are larger than one, so that the same
// check works for unit vectors and for world-space coordinates.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func Clamp[F constraints.Float](x, lo, hi F) F {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Finite reports whether none of the values is NaN or infinite.
func Finite[F constraints.Float](values ...F) bool {
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
