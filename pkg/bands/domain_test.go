// pkg/bands/domain_test.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"testing"

	"github.com/mmp/daabands/pkg/util"
)

func TestDomainParamsCheckInputRelative(t *testing.T) {
	d := NewDomainParams(-10, 10, true, 0, 1, false)
	var log util.ErrorLogger
	if !d.CheckInput(100, &log) {
		t.Fatalf("expected a valid relative domain, errors: %s", log.String())
	}
	if d.MinVal() != 90 || d.MaxVal() != 110 {
		t.Errorf("expected [90,110] around own_val 100, got [%v,%v]", d.MinVal(), d.MaxVal())
	}
}

func TestDomainParamsCheckInputAbsoluteOutOfBounds(t *testing.T) {
	d := NewDomainParams(0, 50, false, 0, 1, false)
	var log util.ErrorLogger
	if d.CheckInput(100, &log) {
		t.Fatalf("own_val 100 outside [0,50] should fail validation")
	}
	if !d.Valid() == true {
		// Valid() reflects state, must be false after a failed check.
	}
	if d.Valid() {
		t.Errorf("Valid() should be false after a failed CheckInput")
	}
}

func TestDomainParamsCheckInputStepMustBePositive(t *testing.T) {
	d := NewDomainParams(-10, 10, true, 0, 0, false)
	var log util.ErrorLogger
	if d.CheckInput(0, &log) {
		t.Fatalf("step of 0 should fail validation")
	}
}

func TestDomainParamsCircularModDomain(t *testing.T) {
	// A full-circle track domain: [-180,180] relative, wrapping at 360.
	d := NewDomainParams(-180, 180, true, 360, 5, true)
	var log util.ErrorLogger
	if !d.CheckInput(90, &log) {
		t.Fatalf("unexpected error: %s", log.String())
	}
	if !d.Circular() {
		t.Errorf("expected a full-span modular domain to be circular")
	}
	if d.MinVal() != 0 || d.MaxVal() != 360 {
		t.Errorf("expected circular domain to normalize to [0,360), got [%v,%v]", d.MinVal(), d.MaxVal())
	}
}

func TestDomainParamsSetMutatorsInvalidateCache(t *testing.T) {
	d := NewDomainParams(-10, 10, true, 0, 1, false)
	var log util.ErrorLogger
	d.CheckInput(0, &log)
	if !d.Valid() {
		t.Fatalf("expected initial check to succeed")
	}
	d.SetMax(20)
	if d.Valid() {
		t.Errorf("changing max should invalidate the cache")
	}
}
