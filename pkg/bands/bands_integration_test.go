// pkg/bands/bands_integration_test.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands_test

import (
	"math"
	"testing"

	"github.com/mmp/daabands/pkg/alerting"
	"github.com/mmp/daabands/pkg/bands"
	"github.com/mmp/daabands/pkg/detectors"
	"github.com/mmp/daabands/pkg/kinematics"
)

// headOnBands builds a track-bands engine for an ownship flying due north
// at 100 m/s with a single intruder closing head-on from the north, using
// the default three-level alerting ladder and cylinder detectors.
func headOnBands(t *testing.T) *bands.Bands {
	t.Helper()
	alertor := alerting.Default()
	own := &kinematics.Ownship{
		Control:        kinematics.Track,
		TrackDeg:       0,
		GroundSpeedMps: 100,
		Pos:            bands.Vec3{X: 0, Y: -2500},
		Step:           1,
	}
	intruder := kinematics.NewTraffic(bands.Vec3{X: 0, Y: 2500}, 180, 100, 0)
	domain := bands.NewDomainParams(-180, 180, true, 360, 5, true)

	core := bands.CoreParams{
		MinHorizontalRecovery: 1852,
		MinVerticalRecovery:   150,
		CABands:               true,
		CAFactor:              0.1,
		RecoveryStabilityTime: 5,
		ConflictAircraft:      func(level int) []bands.TrafficState { return []bands.TrafficState{intruder} },
	}

	b := bands.NewBands(domain, alertor, kinematics.Oracle{}, core, own,
		[]bands.TrafficState{intruder}, detectors.AsFactory(), 150, 50, nil)
	return b
}

func TestHeadOnConflictProducesNearBandAheadOfTrack(t *testing.T) {
	b := headOnBands(t)
	if b.Length() == 0 {
		t.Fatalf("expected at least one band")
	}
	r, ok := b.RangeOf(0)
	if !ok {
		t.Fatalf("expected a band to cover the current track")
	}
	if !r.Region.IsConflictBand() && r.Region != bands.RegionRecovery {
		t.Errorf("expected a maneuver straight ahead of a head-on closure to be unsafe, got %s", r.Region)
	}
}

func TestResolutionFindsAClearHeading(t *testing.T) {
	b := headOnBands(t)
	up := b.ComputeResolution(true)
	down := b.ComputeResolution(false)
	if math.IsNaN(up) && math.IsNaN(down) {
		t.Fatalf("expected at least one resolution direction to report a value")
	}
}

func TestPeripheralAircraftEmptyWhenNoTraffic(t *testing.T) {
	alertor := alerting.Default()
	own := &kinematics.Ownship{Control: kinematics.Track, TrackDeg: 0, GroundSpeedMps: 100, Step: 1}
	domain := bands.NewDomainParams(-180, 180, true, 360, 5, true)
	core := bands.CoreParams{
		MinHorizontalRecovery: 1852,
		MinVerticalRecovery:   150,
		RecoveryStabilityTime: 5,
		ConflictAircraft:      func(level int) []bands.TrafficState { return nil },
	}
	b := bands.NewBands(domain, alertor, kinematics.Oracle{}, core, own, nil, detectors.AsFactory(), 150, 50, nil)
	if len(b.PeripheralAircraft(alertor.ConflictAlertLevel())) != 0 {
		t.Errorf("expected no peripheral aircraft with an empty traffic list")
	}
	if b.Length() != 1 || b.Region(0) != bands.RegionNone {
		t.Fatalf("expected a single NONE band covering the whole domain with no traffic, got len=%d region=%v", b.Length(), b.Region(0))
	}
}
