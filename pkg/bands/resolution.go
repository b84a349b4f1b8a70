// pkg/bands/resolution.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import "math"

// ComputeResolution finds the nearest conflict-free maneuver in the given
// direction (true = up, false = down) and reports it as a real value of
// the control variable (§4.8). It returns NaN if the configuration is
// invalid or the ownship is already conflict-free; +/-Inf (signed by
// direction) if no green maneuver exists within the domain's reach in
// that direction.
func (b *Bands) ComputeResolution(up bool) float64 {
	b.ensureComputed()
	if !b.Domain.Valid() {
		return math.NaN()
	}

	dir, maxn := -1, b.Domain.MaxDown()
	if up {
		dir, maxn = 1, b.Domain.MaxUp()
	}

	lvl := b.conflictLevel()
	if lvl == nil {
		return math.NaN()
	}
	base := b.baseOracleParams(*lvl, lvl.AlertingTime)
	base.Traffic = b.Traffic

	idx, ok := b.Oracle.FirstGreen(base, dir, maxn)
	switch {
	case !ok:
		return math.Inf(dir)
	case idx == 0:
		return math.NaN()
	default:
		v := b.Ownship.OwnVal() + float64(dir)*float64(idx)*b.Domain.Step()
		return Modulo(v, b.Domain.Mod())
	}
}

// conflictLevel returns the alertor's configured conflict alert level, or
// nil if the alertor exposes none.
func (b *Bands) conflictLevel() *AlertLevel {
	i := b.Alertor.ConflictAlertLevel()
	if i < 1 || i > b.Alertor.MostSevereAlertLevel() {
		return nil
	}
	lvl := b.Alertor.Level(i)
	return &lvl
}

// LastTimeToManeuver computes the latest time at which a maneuver against
// ac alone would still resolve the current conflict (§4.8). It returns
// NaN if ac is not currently in conflict, -Inf if no time margin remains
// (the conflict is already solid red at time 0), else the bisected
// pivot time.
func (b *Bands) LastTimeToManeuver(ac TrafficState) float64 {
	b.ensureComputed()
	if !b.Domain.Valid() {
		return math.NaN()
	}

	lvl := b.conflictLevel()
	if lvl == nil {
		return math.NaN()
	}

	cd := lvl.Detector.ConflictDetection(b.Ownship.Position(), b.Ownship.Velocity(), ac.Position(), ac.Velocity(), 0, lvl.LateAlertingTime)
	if !cd.Conflict {
		return math.NaN()
	}
	tIn := cd.TimeIn
	if AlmostEquals(tIn, 0) {
		return math.Inf(-1)
	}

	base := b.baseOracleParams(*lvl, lvl.LateAlertingTime)

	allRedAt := func(pivot float64) bool {
		ownProj := b.Ownship.ProjectForward(pivot)
		acProj := ac.ProjectForward(pivot)
		p := base
		p.Ownship = ownProj
		p.Traffic = []TrafficState{acProj}
		return b.Oracle.AllIntRed(p)
	}

	pivotRed, pivotGreen := tIn, 0.0
	pivot := pivotGreen
	for (pivotRed-pivotGreen)/2 > bisectPrecision {
		if allRedAt(pivot) {
			pivotRed = pivot
		} else {
			pivotGreen = pivot
		}
		pivot = (pivotRed + pivotGreen) / 2
	}
	if pivotGreen == 0 {
		return math.Inf(-1)
	}
	return pivotGreen
}

// KinematicConflict reports whether any maneuver index within the
// domain's reach yields a conflict-free-or-not interval in red against ac
// alone, using the given detector and horizon (exposed on the query
// surface per §6).
func (b *Bands) KinematicConflict(ac TrafficState, detector ConflictDetector, t float64) bool {
	b.ensureComputed()
	if !b.Domain.Valid() {
		return false
	}
	lvl := AlertLevel{Detector: detector}
	base := b.baseOracleParams(lvl, t)
	return kinematicConflict(b.Oracle, base, ac)
}
