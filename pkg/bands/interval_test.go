// pkg/bands/interval_test.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import "testing"

func TestIntervalSetAlmostAddMerges(t *testing.T) {
	var s IntervalSet
	s.AlmostAdd(0, 10)
	s.AlmostAdd(10+Epsilon/2, 20)
	if len(s) != 1 {
		t.Fatalf("expected abutting intervals to merge, got %v", s)
	}
	if s[0].Low != 0 || s[0].Up != 20 {
		t.Errorf("expected [0,20], got %v", s[0])
	}
}

func TestIntervalSetAlmostAddKeepsDisjoint(t *testing.T) {
	var s IntervalSet
	s.AlmostAdd(0, 10)
	s.AlmostAdd(20, 30)
	if len(s) != 2 {
		t.Fatalf("expected two disjoint intervals, got %v", s)
	}
}

func TestIntervalSetAlmostIntersect(t *testing.T) {
	var a, b IntervalSet
	a.AlmostAdd(0, 10)
	a.AlmostAdd(20, 30)
	b.AlmostAdd(5, 25)

	a.AlmostIntersect(b)
	if len(a) != 2 {
		t.Fatalf("expected two surviving pieces, got %v", a)
	}
	if a[0].Low != 5 || a[0].Up != 10 {
		t.Errorf("expected [5,10], got %v", a[0])
	}
	if a[1].Low != 20 || a[1].Up != 25 {
		t.Errorf("expected [20,25], got %v", a[1])
	}
}

func TestIntervalSetContains(t *testing.T) {
	var s IntervalSet
	s.AlmostAdd(10, 20)
	if !s.Contains(15) {
		t.Errorf("15 should be contained in [10,20]")
	}
	if s.Contains(25) {
		t.Errorf("25 should not be contained in [10,20]")
	}
}
