// pkg/bands/tolerance.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import "math"

// Epsilon is the absolute tolerance used throughout the band-synthesis
// engine to treat nearly-equal floating point boundaries as equal. All
// interval algebra and modular arithmetic routes through the helpers below
// rather than comparing wrapped or accumulated values with raw <, <=, >.
const Epsilon = 1e-10

// AlmostEquals reports whether a and b differ by no more than Epsilon.
func AlmostEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// AlmostLeq reports whether a <= b, treating nearly-equal values as equal.
func AlmostLeq(a, b float64) bool {
	return a <= b || AlmostEquals(a, b)
}

// AlmostGeq reports whether a >= b, treating nearly-equal values as equal.
func AlmostGeq(a, b float64) bool {
	return a >= b || AlmostEquals(a, b)
}

// AlmostGreater reports whether a is strictly greater than b outside of
// tolerance.
func AlmostGreater(a, b float64) bool {
	return a > b && !AlmostEquals(a, b)
}

// AlmostLess reports whether a is strictly less than b outside of
// tolerance.
func AlmostLess(a, b float64) bool {
	return a < b && !AlmostEquals(a, b)
}

// Modulo maps v into [0, m). When m is zero (no wrap configured), v is
// returned unchanged.
func Modulo(v, m float64) float64 {
	if m <= 0 {
		return v
	}
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	// math.Mod can return a value within Epsilon of m due to rounding;
	// snap it back into [0, m).
	if AlmostEquals(r, m) {
		r = 0
	}
	return r
}
