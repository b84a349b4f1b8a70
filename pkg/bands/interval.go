// pkg/bands/interval.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

// Interval is a closed real interval [Low, Up]. Low <= Up is not enforced
// by the type itself; callers that build a degenerate or inverted interval
// get back whatever IntervalSet.AlmostAdd decides to do with it.
type Interval struct {
	Low, Up float64
}

// Width returns Up - Low.
func (iv Interval) Width() float64 {
	return iv.Up - iv.Low
}

// Empty reports whether the interval contains no points outside of
// tolerance (Up < Low).
func (iv Interval) Empty() bool {
	return AlmostLess(iv.Up, iv.Low)
}

// IntervalSet is a union of pairwise-disjoint closed intervals, always
// kept sorted by ascending Low and with no two members within tolerance
// of overlapping or touching (those get merged by AlmostAdd).
type IntervalSet []Interval

// Empty reports whether the set contains no intervals.
func (s IntervalSet) Empty() bool {
	return len(s) == 0
}

// Clone returns an independent copy of s.
func (s IntervalSet) Clone() IntervalSet {
	c := make(IntervalSet, len(s))
	copy(c, s)
	return c
}

// AlmostAdd inserts [lo, hi] into the set, merging with any existing
// interval whose endpoints are within Epsilon of overlapping or abutting
// the new one. An inverted [lo, hi] (hi < lo outside tolerance) is a
// no-op; a degenerate one (lo == hi) is added as a single point.
//
// Because the set is kept sorted and disjoint, every existing interval
// that overlaps or abuts the new one is contiguous, so a single
// left-to-right pass that folds them into a running merged interval and
// keeps everything else as-is is sufficient; no post-sort is needed.
func (s *IntervalSet) AlmostAdd(lo, hi float64) {
	if AlmostLess(hi, lo) {
		return
	}

	merged := Interval{Low: lo, Up: hi}
	var before, after IntervalSet

	for _, iv := range *s {
		switch {
		case overlapsOrAbuts(merged, iv):
			merged = unionOf(merged, iv)
		case iv.Up < merged.Low:
			before = append(before, iv)
		default:
			after = append(after, iv)
		}
	}

	out := append(before, merged)
	out = append(out, after...)
	*s = out
}

// overlapsOrAbuts reports whether a and b share a point, or their nearer
// endpoints are within Epsilon of each other.
func overlapsOrAbuts(a, b Interval) bool {
	lo := a.Low
	if b.Low > lo {
		lo = b.Low
	}
	hi := a.Up
	if b.Up < hi {
		hi = b.Up
	}
	return AlmostLeq(lo, hi)
}

func unionOf(a, b Interval) Interval {
	lo := a.Low
	if b.Low < lo {
		lo = b.Low
	}
	hi := a.Up
	if b.Up > hi {
		hi = b.Up
	}
	return Interval{Low: lo, Up: hi}
}

// AlmostIntersect replaces s with its tolerant intersection with other: a
// point belongs to the result if it is within tolerance of lying in some
// interval of both s and other.
func (s *IntervalSet) AlmostIntersect(other IntervalSet) {
	var out IntervalSet
	for _, a := range *s {
		for _, b := range other {
			lo := a.Low
			if b.Low > lo {
				lo = b.Low
			}
			hi := a.Up
			if b.Up < hi {
				hi = b.Up
			}
			if AlmostLeq(lo, hi) {
				out.AlmostAdd(lo, hi)
			}
		}
	}
	*s = out
}

// Contains reports whether v lies within tolerance of some interval in s.
func (s IntervalSet) Contains(v float64) bool {
	for _, iv := range s {
		if AlmostGeq(v, iv.Low) && AlmostLeq(v, iv.Up) {
			return true
		}
	}
	return false
}
