// pkg/bands/query_test.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"math"
	"testing"
)

func rangesBands() []BandsRange {
	return []BandsRange{
		{Interval: Interval{Low: 0, Up: 80}, Region: RegionNone},
		{Interval: Interval{Low: 80, Up: 100}, Region: RegionNear},
		{Interval: Interval{Low: 100, Up: 360}, Region: RegionNone},
	}
}

func bandsWithRanges(ranges []BandsRange, mod float64) *Bands {
	d := NewDomainParams(0, mod, false, mod, 1, false)
	d.state = checked
	d.minVal, d.maxVal = 0, mod
	d.mod = mod
	return &Bands{Domain: d, ranges: ranges, recoveryTime: math.NaN(), outdated: false}
}

func TestRangeOfInterior(t *testing.T) {
	b := bandsWithRanges(rangesBands(), 360)
	r, ok := b.RangeOf(90)
	if !ok || r.Region != RegionNear {
		t.Fatalf("expected NEAR at 90, got %+v ok=%v", r, ok)
	}
}

func TestRangeOfAtConflictBandBoundary(t *testing.T) {
	b := bandsWithRanges(rangesBands(), 360)
	r, ok := b.RangeOf(80)
	if !ok || r.Region != RegionNear {
		t.Fatalf("boundary 80 should resolve into the adjoining NEAR band, got %+v ok=%v", r, ok)
	}
}

func TestRangeOfOutsideDomainFails(t *testing.T) {
	b := bandsWithRanges(rangesBands(), 360)
	b.Domain.mod = 0 // non-modular: [0,360] is now a plain bounded domain, not a wrap
	if _, ok := b.RangeOf(500); ok {
		t.Errorf("500 should not resolve in a non-modular [0,360] domain")
	}
}

func TestLengthAndIndexedAccess(t *testing.T) {
	b := bandsWithRanges(rangesBands(), 360)
	if b.Length() != 3 {
		t.Fatalf("expected 3 bands, got %d", b.Length())
	}
	if b.Region(1) != RegionNear {
		t.Errorf("expected band 1 to be NEAR, got %s", b.Region(1))
	}
	if b.Region(99) != RegionUnknown {
		t.Errorf("out-of-range index should report UNKNOWN, got %s", b.Region(99))
	}
}

func TestDescribeAndDump(t *testing.T) {
	b := bandsWithRanges(rangesBands(), 360)
	b.recoveryTime = 12.34
	s := b.Describe()
	if s == "" {
		t.Fatalf("expected a non-empty description")
	}
	dump := b.Dump(1)
	if len(dump) != 3 || dump[1].Region != "NEAR" {
		t.Fatalf("expected dump[1] to be NEAR, got %+v", dump)
	}
}

func TestTimeToRecoveryReportsSaturation(t *testing.T) {
	b := bandsWithRanges(nil, 360)
	b.recoveryTime = math.Inf(-1)
	if !math.IsInf(b.TimeToRecovery(), -1) {
		t.Errorf("expected -Inf recovery time to pass through")
	}
}
