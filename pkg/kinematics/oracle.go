// pkg/kinematics/oracle.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kinematics

import (
	"github.com/mmp/daabands/pkg/bands"
	"github.com/mmp/daabands/pkg/util"
)

// Oracle is the default Integer-Band Oracle: for each candidate maneuver
// index it realizes the ownship's trajectory via IndexedOwnship.AtIndex
// and sweeps every configured detector (the level detector, and the
// recovery cylinder when one is supplied) against the traffic list.
type Oracle struct{}

// indexRed reports whether maneuver index k puts the ownship in conflict
// with any aircraft in p.Traffic, against p.Detector and, if non-nil,
// p.RecoveryDetector.
func indexRed(io IndexedOwnship, p bands.OracleParams, k int) bool {
	cand := io.AtIndex(p.Step, k)
	pos, vel := cand.Position(), cand.Velocity()
	for _, ac := range p.Traffic {
		acPos, acVel := ac.Position(), ac.Velocity()
		if p.Detector != nil && p.Detector.ConflictDetection(pos, vel, acPos, acVel, p.B, p.T).Conflict {
			return true
		}
		if p.RecoveryDetector != nil && p.RecoveryDetector.ConflictDetection(pos, vel, acPos, acVel, p.B, p.T).Conflict {
			return true
		}
	}
	return false
}

// Combine evaluates every index in [-MaxDown, MaxUp], tracking the
// surviving (conflict-free) indices in an IntRangeSet bitset, then folds
// the remaining available bits into maximal closed integer intervals.
func (Oracle) Combine(p bands.OracleParams) []bands.IntInterval {
	io, ok := p.Ownship.(IndexedOwnship)
	if !ok || p.MaxDown < 0 || p.MaxUp < 0 {
		return nil
	}

	green := util.MakeIntRangeSet(-p.MaxDown, p.MaxUp)
	for k := -p.MaxDown; k <= p.MaxUp; k++ {
		if indexRed(io, p, k) {
			_ = green.Take(k)
		}
	}

	var result []bands.IntInterval
	inRun := false
	start := 0
	for k := -p.MaxDown; k <= p.MaxUp; k++ {
		if green.IsAvailable(k) {
			if !inRun {
				start = k
				inRun = true
			}
		} else if inRun {
			result = append(result, bands.IntInterval{Lo: start, Hi: k - 1})
			inRun = false
		}
	}
	if inRun {
		result = append(result, bands.IntInterval{Lo: start, Hi: p.MaxUp})
	}
	return result
}

// AnyIntRed reports whether any candidate index is in conflict.
func (Oracle) AnyIntRed(p bands.OracleParams) bool {
	io, ok := p.Ownship.(IndexedOwnship)
	if !ok {
		return false
	}
	for k := -p.MaxDown; k <= p.MaxUp; k++ {
		if indexRed(io, p, k) {
			return true
		}
	}
	return false
}

// AllIntRed reports whether every candidate index is in conflict.
func (Oracle) AllIntRed(p bands.OracleParams) bool {
	io, ok := p.Ownship.(IndexedOwnship)
	if !ok {
		return true
	}
	for k := -p.MaxDown; k <= p.MaxUp; k++ {
		if !indexRed(io, p, k) {
			return false
		}
	}
	return true
}

// FirstGreen scans outward from index 0 in direction dir (>0 up, <0 down)
// up to maxn steps and returns the first conflict-free step count found.
func (Oracle) FirstGreen(p bands.OracleParams, dir, maxn int) (int, bool) {
	io, ok := p.Ownship.(IndexedOwnship)
	if !ok {
		return 0, false
	}
	for n := 0; n <= maxn; n++ {
		k := dir * n
		if !indexRed(io, p, k) {
			return n, true
		}
	}
	return 0, false
}
