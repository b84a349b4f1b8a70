// pkg/bands/peripheral.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

// kinematicConflict reports whether any maneuver index within
// [-maxdown, maxup] yields a conflict-free-or-not interval in red against
// ac alone, i.e. whether at least one candidate maneuver is unsafe for
// this single intruder (§4.4).
func kinematicConflict(oracle Oracle, base OracleParams, ac TrafficState) bool {
	p := base
	p.Traffic = []TrafficState{ac}
	return oracle.AnyIntRed(p)
}

// classifyPeripheral computes the peripheral-aircraft list for alert
// level L (§4.4): an aircraft is peripheral at L if its configured
// detector reports no conflict right now over [0, T] but some maneuver
// would put the ownship in conflict with it.
func classifyPeripheral(oracle Oracle, base OracleParams, detector ConflictDetector, t float64, traffic []TrafficState, ownship OwnshipState) []TrafficState {
	var peripheral []TrafficState
	for _, ac := range traffic {
		cd := detector.ConflictDetection(ownship.Position(), ownship.Velocity(), ac.Position(), ac.Velocity(), 0, t)
		if cd.Conflict {
			continue
		}
		if kinematicConflict(oracle, base, ac) {
			peripheral = append(peripheral, ac)
		}
	}
	return peripheral
}
