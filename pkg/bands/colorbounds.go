// pkg/bands/colorbounds.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import "github.com/mmp/daabands/pkg/util"

// ColoredValue is a breakpoint in a piecewise-constant coloring of a real
// line segment: the Region applies to every value in [Value, nextValue)
// where nextValue is the Value of the following breakpoint in the list (or
// the end of the segment, for the final breakpoint).
type ColoredValue struct {
	Value  float64
	Region BandsRegion
}

// newColoredValueList seeds a breakpoint list covering [lo, hi] with a
// single uniform background region.
func newColoredValueList(lo, hi float64, background BandsRegion) []ColoredValue {
	if AlmostEquals(lo, hi) {
		return []ColoredValue{{Value: lo, Region: background}}
	}
	return []ColoredValue{{Value: lo, Region: background}, {Value: hi, Region: background}}
}

// splitAt ensures a breakpoint exists at exactly v, inheriting the region
// of whichever breakpoint currently governs v, and returns its index. The
// list must already span v (i.e. v is not before the first breakpoint).
func splitAt(list []ColoredValue, v float64) ([]ColoredValue, int) {
	for i, cv := range list {
		if AlmostEquals(cv.Value, v) {
			return list, i
		}
		if cv.Value > v {
			// list[i-1] governs v (i must be > 0 since the list spans v).
			region := list[i-1].Region
			list = util.InsertSliceElement(list, i, ColoredValue{Value: v, Region: region})
			return list, i
		}
	}
	// v is at or beyond the last breakpoint; nothing to split, append if
	// strictly beyond (defensive; callers keep v within [lo, hi]).
	last := list[len(list)-1]
	if AlmostGreater(v, last.Value) {
		list = append(list, ColoredValue{Value: v, Region: last.Region})
		return list, len(list) - 1
	}
	return list, len(list) - 1
}

// insertColoredRange paints the closed interval [lo, hi] with region,
// splitting breakpoints at lo and hi as needed and overwriting whatever
// region previously governed the interior. Later calls win: color_bands
// seeds the background at the most severe level's region, then calls
// this once per level in descending severity order (most severe first,
// terminal RECOVERY/NONE last) over each level's none-set, so the
// lightest color a point ever qualifies for is always the final paint.
func insertColoredRange(list []ColoredValue, lo, hi float64, region BandsRegion) []ColoredValue {
	if AlmostGreater(lo, hi) {
		return list
	}
	list, loIdx := splitAt(list, lo)
	list, hiIdx := splitAt(list, hi)
	for i := loIdx; i < hiIdx; i++ {
		list[i].Region = region
	}
	return list
}

// toBands collapses a breakpoint list into maximal same-color BandsRanges.
func toBands(list []ColoredValue) []BandsRange {
	if len(list) == 0 {
		return nil
	}
	var out []BandsRange
	start := list[0].Value
	region := list[0].Region
	for i := 1; i < len(list); i++ {
		if list[i].Region != region {
			out = append(out, BandsRange{Interval: Interval{Low: start, Up: list[i].Value}, Region: region})
			start = list[i].Value
			region = list[i].Region
		}
	}
	if len(list) >= 2 && AlmostGreater(list[len(list)-1].Value, start) {
		out = append(out, BandsRange{Interval: Interval{Low: start, Up: list[len(list)-1].Value}, Region: region})
	} else if len(list) == 1 {
		out = append(out, BandsRange{Interval: Interval{Low: start, Up: start}, Region: region})
	}
	return out
}
