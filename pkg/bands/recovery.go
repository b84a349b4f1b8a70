// pkg/bands/recovery.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import "math"

// bisectPrecision is the stopping half-width for the recovery-time and
// last-time-to-maneuver bisection searches, in seconds (§4.6).
const bisectPrecision = 0.5

// runRecovery implements the Recovery Engine (§4.6). alertingSet is the
// level's own peripheral-union-conflict aircraft set (not the full
// traffic roster), matching compute_recovery_bands(noneset, core,
// alerting_set). It returns the recovery_time: -Inf means saturated with
// no escape found, a finite value is the earliest recommended recovery
// horizon.
func (b *Bands) runRecovery(lvl AlertLevel, alertingSet []TrafficState) float64 {
	recoveryTime := math.Inf(-1)
	t := lvl.LateAlertingTime
	base := b.baseOracleParams(lvl, t)

	nmac := b.CylinderFactory(b.NMACDiameter, b.NMACHeight)
	if b.noneSetAt(base, nmac, nil, 0, t, alertingSet).Empty() {
		return recoveryTime
	}

	d, h := b.Core.MinHorizontalRecovery, b.Core.MinVerticalRecovery
	factor := 1 - b.Core.CAFactor

	for d > b.NMACDiameter || h > b.NMACHeight {
		cyl := b.CylinderFactory(d, h)
		none := b.noneSetAt(base, cyl, nil, 0, t, alertingSet)
		solidRed := none.Empty()

		if solidRed && !b.Core.CABands {
			return recoveryTime
		} else if !solidRed {
			pivotRed, pivotGreen := 0.0, t+1
			pivot := pivotGreen - 1
			for (pivotGreen-pivotRed)/2 > bisectPrecision {
				if b.noneSetAt(base, lvl.Detector, cyl, pivot, t, alertingSet).Empty() {
					pivotRed = pivot
				} else {
					pivotGreen = pivot
				}
				pivot = (pivotRed + pivotGreen) / 2
			}

			if pivotGreen <= t {
				recoveryTime = math.Min(t, pivotGreen+b.Core.RecoveryStabilityTime)
			} else {
				recoveryTime = pivotRed
			}

			solidRed = b.noneSetAt(base, lvl.Detector, cyl, recoveryTime, t, alertingSet).Empty()
			if solidRed {
				recoveryTime = math.Inf(-1)
			}
			if !solidRed || !b.Core.CABands {
				return recoveryTime
			}
		}

		d *= factor
		h *= factor
		if b.logger != nil {
			b.logger.Info("bands: recovery cylinder shrunk", "d", d, "h", h)
		}
	}

	return recoveryTime
}

// noneSetAt computes the none-set against primary (as p.Detector) and, if
// recoveryDet is non-nil, also against it (as p.RecoveryDetector), over
// [b0, t0], against the given alerting-set traffic.
func (b *Bands) noneSetAt(base OracleParams, primary, recoveryDet ConflictDetector, b0, t0 float64, traffic []TrafficState) IntervalSet {
	p := base
	p.Detector = primary
	p.RecoveryDetector = recoveryDet
	p.B, p.T = b0, t0
	p.Traffic = traffic
	ivs := b.Oracle.Combine(p)
	return b.Domain.ToIntervalSet(ivs, b.Domain.Step(), b.Ownship.OwnVal())
}
