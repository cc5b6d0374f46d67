// Package money holds the comparison policy for monetary amounts.
//
// Prices are never compared for exact equality: two amounts are the same
// when they are within an absolute tolerance, or within a relative tolerance
// of the larger magnitude.
package money

import "math"

const (
	// AbsTolerance is the absolute distance under which two amounts are equal.
	AbsTolerance = 1e-4
	// RelTolerance is the fraction of the larger magnitude under which two
	// amounts are equal.
	RelTolerance = 1e-8
)

// AlmostEqual reports whether a and b are close enough to be the same amount.
//
// Identical infinities are equal. NaN is equal to NaN and to nothing else, so
// the relation stays reflexive for every float64.
func AlmostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	d := math.Abs(a - b)
	return d < AbsTolerance || d < RelTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// Compare returns 0 when a and b are AlmostEqual, -1 when a < b and +1
// otherwise. NaN sorts after every other value.
func Compare(a, b float64) int {
	if AlmostEqual(a, b) {
		return 0
	}
	switch {
	case math.IsNaN(a):
		return 1
	case math.IsNaN(b):
		return -1
	case a < b:
		return -1
	default:
		return 1
	}
}
