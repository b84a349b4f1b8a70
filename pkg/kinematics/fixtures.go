// pkg/kinematics/fixtures.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package kinematics

import (
	"math"

	"github.com/google/uuid"

	"github.com/mmp/daabands/pkg/bands"
)

// NewTraffic builds a Traffic fixture at the given position flying the
// given track (degrees), ground speed, and vertical speed, identified by
// a freshly generated UUID. Test and example code that doesn't care
// about a specific aircraft identity uses this rather than hand-rolling
// one.
func NewTraffic(pos bands.Vec3, trackDeg, groundSpeedMps, verticalSpeedMps float64) *Traffic {
	rad := trackDeg * math.Pi / 180
	return &Traffic{
		AircraftID: uuid.NewString(),
		Pos:        pos,
		Vel: bands.Vec3{
			X: groundSpeedMps * math.Sin(rad),
			Y: groundSpeedMps * math.Cos(rad),
			Z: verticalSpeedMps,
		},
	}
}
