// pkg/bands/noneset.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import "math"

// ToIntervalSet converts an ordered list of integer maneuver-index
// intervals into a real-valued IntervalSet under the domain's scale,
// offset, and modular wrap (§4.3). scale and offset map an index k to a
// real value via lo = scale*lb + offset, consistent with the value a
// resolution search assigns to the same index (own_val + sign*k*step).
func (d *DomainParams) ToIntervalSet(ivs []IntInterval, scale, offset float64) IntervalSet {
	var out IntervalSet
	min, max := d.minVal, d.maxVal
	mod := d.mod
	domainWraps := mod > 0 && AlmostGreater(min, max)

	for _, iv := range ivs {
		lo := scale*float64(iv.Lo) + offset
		hi := scale*float64(iv.Hi) + offset

		if mod <= 0 {
			intersectAdd(lo, hi, min, max, &out)
			continue
		}

		lo = Modulo(lo, mod)
		hi = Modulo(hi, mod)

		if AlmostEquals(lo, hi) {
			if domainWraps {
				out.AlmostAdd(min, mod)
				out.AlmostAdd(0, max)
			} else {
				out.AlmostAdd(min, max)
			}
			continue
		}

		rangeWraps := AlmostGreater(lo, hi)
		switch {
		case !domainWraps && !rangeWraps:
			intersectAdd(lo, hi, min, max, &out)
		case !domainWraps && rangeWraps:
			intersectAdd(lo, mod, min, max, &out)
			intersectAdd(0, hi, min, max, &out)
		case domainWraps && !rangeWraps:
			intersectAdd(lo, hi, min, mod, &out)
			intersectAdd(lo, hi, 0, max, &out)
		default: // both wrap
			out.AlmostAdd(math.Max(min, lo), mod)
			out.AlmostAdd(0, math.Min(max, hi))
		}
	}
	return out
}

// intersectAdd adds the intersection of [a,b] and [c,d] to out, if any.
func intersectAdd(a, b, c, d float64, out *IntervalSet) {
	lo := math.Max(a, c)
	hi := math.Min(b, d)
	if AlmostLeq(lo, hi) {
		out.AlmostAdd(lo, hi)
	}
}

// computeNoneBands builds the conflict-free real-valued interval set for
// a single alert level (§4.5): the Integer-Band Oracle is queried once
// against the level's peripheral aircraft over [0, T] and once against
// its conflict aircraft over [0, lateT] (optionally with a different,
// "late" detector), and the two resulting none-sets are tolerantly
// intersected.
func computeNoneBands(oracle Oracle, dom *DomainParams, base OracleParams, lateDetector ConflictDetector, lateT float64, peripheral, conflictAc []TrafficState) IntervalSet {
	p1 := base
	p1.Traffic = peripheral
	set1 := oracle.Combine(p1)

	p2 := base
	p2.Traffic = conflictAc
	p2.T = lateT
	if lateDetector != nil {
		p2.Detector = lateDetector
	}
	set2 := oracle.Combine(p2)

	iv1 := dom.ToIntervalSet(set1, dom.step, dom.ownVal)
	iv2 := dom.ToIntervalSet(set2, dom.step, dom.ownVal)
	iv1.AlmostIntersect(iv2)
	return iv1
}
