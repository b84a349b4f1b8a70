// pkg/kinematics/trajectory.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package kinematics supplies a concrete constant-velocity trajectory
// family satisfying bands.OwnshipState/bands.TrafficState, and an
// Integer-Band Oracle that drives a pluggable bands.ConflictDetector over
// it. The band-synthesis core treats both as external collaborators; this
// package is the default implementation, not a claim that every aircraft
// flies straight lines forever.
package kinematics

import (
	"math"

	"github.com/mmp/daabands/pkg/bands"
)

// ControlVariable identifies which of the four conventional DAA control
// variables an Ownship's maneuver index perturbs.
type ControlVariable int

const (
	Track ControlVariable = iota
	GroundSpeed
	VerticalSpeed
	Altitude
)

// IndexedOwnship is the augmented ownship interface the Oracle requires:
// beyond the core's bands.OwnshipState, it must be able to realize a
// candidate maneuver index as a new trajectory state.
type IndexedOwnship interface {
	bands.OwnshipState
	AtIndex(step float64, k int) bands.OwnshipState
}

// Ownship is a constant-velocity aircraft state (track, ground speed and
// vertical speed held fixed between projections; there is no turn rate),
// parametrized by which control variable a Bands instance governs.
type Ownship struct {
	Control ControlVariable

	TrackDeg         float64
	GroundSpeedMps   float64
	VerticalSpeedMps float64
	AltitudeM        float64

	Pos  bands.Vec3
	Step float64 // time_step for trajectory integration
}

// OwnVal returns the current value of the governed control variable.
func (o *Ownship) OwnVal() float64 {
	switch o.Control {
	case Track:
		return o.TrackDeg
	case GroundSpeed:
		return o.GroundSpeedMps
	case VerticalSpeed:
		return o.VerticalSpeedMps
	default:
		return o.AltitudeM
	}
}

// TimeStep returns the integration step used for forward projection.
func (o *Ownship) TimeStep() float64 { return o.Step }

func (o *Ownship) Position() bands.Vec3 { return o.Pos }

// Velocity returns the 3-D velocity implied by track/ground speed/
// vertical speed.
func (o *Ownship) Velocity() bands.Vec3 {
	rad := o.TrackDeg * math.Pi / 180
	return bands.Vec3{
		X: o.GroundSpeedMps * math.Sin(rad),
		Y: o.GroundSpeedMps * math.Cos(rad),
		Z: o.VerticalSpeedMps,
	}
}

// ProjectForward advances position by Velocity()*dt, holding track/speed/
// vertical-speed constant (straight-line projection, per §4.6's
// "linear-project both aircraft forward").
func (o *Ownship) ProjectForward(dt float64) bands.OwnshipState {
	c := *o
	v := o.Velocity()
	c.Pos = bands.Vec3{X: o.Pos.X + v.X*dt, Y: o.Pos.Y + v.Y*dt, Z: o.Pos.Z + v.Z*dt}
	return &c
}

// AtIndex realizes maneuver index k (at the given domain step) as a new
// Ownship with the governed control variable offset by k*step; track
// wraps modulo 360, the others are left unclipped (the enclosing domain
// geometry is responsible for rejecting indices outside its reach).
func (o *Ownship) AtIndex(step float64, k int) bands.OwnshipState {
	c := *o
	delta := float64(k) * step
	switch o.Control {
	case Track:
		t := math.Mod(o.TrackDeg+delta, 360)
		if t < 0 {
			t += 360
		}
		c.TrackDeg = t
	case GroundSpeed:
		c.GroundSpeedMps = o.GroundSpeedMps + delta
	case VerticalSpeed:
		c.VerticalSpeedMps = o.VerticalSpeedMps + delta
	default:
		c.AltitudeM = o.AltitudeM + delta
		c.Pos.Z = c.AltitudeM
	}
	return &c
}

// Traffic is a constant-velocity intruder aircraft.
type Traffic struct {
	AircraftID string
	Pos        bands.Vec3
	Vel        bands.Vec3
}

func (t *Traffic) ID() string          { return t.AircraftID }
func (t *Traffic) Position() bands.Vec3 { return t.Pos }
func (t *Traffic) Velocity() bands.Vec3 { return t.Vel }

// ProjectForward advances position by Vel*dt.
func (t *Traffic) ProjectForward(dt float64) bands.TrafficState {
	c := *t
	c.Pos = bands.Vec3{X: t.Pos.X + t.Vel.X*dt, Y: t.Pos.Y + t.Vel.Y*dt, Z: t.Pos.Z + t.Vel.Z*dt}
	return &c
}
