// pkg/bands/query.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"fmt"
	"math"
	"strings"
)

// Length returns the number of colored bands in the current ranges list,
// triggering recomputation if the cache is outdated.
func (b *Bands) Length() int {
	b.ensureComputed()
	return len(b.ranges)
}

// Interval returns the closed interval of band i.
func (b *Bands) Interval(i int) Interval {
	b.ensureComputed()
	if i < 0 || i >= len(b.ranges) {
		return Interval{}
	}
	return b.ranges[i].Interval
}

// Region returns the region of band i.
func (b *Bands) Region(i int) BandsRegion {
	b.ensureComputed()
	if i < 0 || i >= len(b.ranges) {
		return RegionUnknown
	}
	return b.ranges[i].Region
}

// Ranges returns the full, ordered list of colored bands.
func (b *Bands) Ranges() []BandsRange {
	b.ensureComputed()
	out := make([]BandsRange, len(b.ranges))
	copy(out, b.ranges)
	return out
}

// RangeOf finds the band containing v (§4.9), wrapping v by the domain's
// modulus first. A boundary belongs to a band if the band is a
// resolution band (inclusive both ends), or the endpoint coincides with
// min_val/max_val in a non-circular domain.
func (b *Bands) RangeOf(v float64) (BandsRange, bool) {
	b.ensureComputed()
	if !b.Domain.Valid() {
		return BandsRange{}, false
	}

	v = Modulo(v, b.Domain.Mod())

	var zeroFallback *BandsRange
	var preferred *BandsRange

	for i := range b.ranges {
		r := &b.ranges[i]
		lo, hi := r.Interval.Low, r.Interval.Up

		interior := AlmostGreater(v, lo) && AlmostLess(v, hi)
		atLo := AlmostEquals(v, lo)
		atHi := AlmostEquals(v, hi)

		if !interior && !atLo && !atHi {
			continue
		}

		boundaryOK := interior
		if atLo || atHi {
			if r.Region.IsResolutionBand() {
				boundaryOK = true
			} else if !b.Domain.Circular() {
				if (atLo && AlmostEquals(lo, b.Domain.MinVal())) || (atHi && AlmostEquals(hi, b.Domain.MaxVal())) {
					boundaryOK = true
				}
			}
		}
		if !boundaryOK {
			continue
		}

		if b.Domain.Mod() > 0 && AlmostEquals(v, 0) {
			if atHi && AlmostEquals(hi, b.Domain.Mod()) && r.Region.IsResolutionBand() {
				return *r, true
			}
			if atLo && AlmostEquals(lo, 0) {
				copyR := *r
				zeroFallback = &copyR
				continue
			}
		}

		copyR := *r
		preferred = &copyR
		break
	}

	if preferred != nil {
		return *preferred, true
	}
	if zeroFallback != nil {
		return *zeroFallback, true
	}
	return BandsRange{}, false
}

// PeripheralAircraft returns the peripheral-aircraft list computed for
// alert level L during the last compute.
func (b *Bands) PeripheralAircraft(level int) []TrafficState {
	b.ensureComputed()
	return b.peripheral[level]
}

// TimeToRecovery returns the recovery_time from the last compute: NaN if
// no level was saturated, -Inf if saturated with no recovery found, else
// the finite recovery horizon.
func (b *Bands) TimeToRecovery() float64 {
	b.ensureComputed()
	return b.recoveryTime
}

// Describe renders a human-readable multi-line form of the current
// bands: one line per band, plus a trailing "Time to recovery" line.
func (b *Bands) Describe() string {
	b.ensureComputed()
	var sb strings.Builder
	for _, r := range b.ranges {
		fmt.Fprintf(&sb, "[%.4f, %.4f]: %s\n", r.Interval.Low, r.Interval.Up, r.Region)
	}
	t := b.recoveryTime
	switch {
	case math.IsNaN(t):
		fmt.Fprintf(&sb, "Time to recovery: n/a [s]\n")
	case math.IsInf(t, -1):
		fmt.Fprintf(&sb, "Time to recovery: unrecoverable [s]\n")
	default:
		fmt.Fprintf(&sb, "Time to recovery: %.1f [s]\n", t)
	}
	return sb.String()
}

// Dump returns the structured diagnostic form of the current bands,
// rounding interval endpoints to the given number of decimal places.
func (b *Bands) Dump(precision int) []RangeDump {
	b.ensureComputed()
	mult := math.Pow(10, float64(precision))
	round := func(v float64) float64 { return math.Round(v*mult) / mult }

	out := make([]RangeDump, len(b.ranges))
	for i, r := range b.ranges {
		out[i] = RangeDump{Low: round(r.Interval.Low), Up: round(r.Interval.Up), Region: r.Region.String()}
	}
	return out
}
