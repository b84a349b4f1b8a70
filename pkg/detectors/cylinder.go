// pkg/detectors/cylinder.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package detectors supplies concrete 3-D conflict detectors satisfying
// bands.ConflictDetector. The core treats detectors as an external
// collaborator; this package is the default one, a straight-line
// closest-point-of-approach cylinder test generalized from a 2-D
// separation check to true 3-D relative-velocity geometry.
package detectors

import (
	"math"

	"github.com/mmp/daabands/pkg/bands"
)

// Cylinder is a protected-volume conflict detector: a loss of separation
// occurs whenever the horizontal distance between two aircraft drops
// below HorizontalRadius while the vertical distance is simultaneously
// below VerticalRadius. It projects both aircraft's motion as straight
// lines (constant relative velocity) and solves for the time window,
// within [b, t], over which both conditions hold at once.
type Cylinder struct {
	HorizontalRadius float64
	VerticalRadius   float64
}

// NewCylinder constructs a detector from a full protected diameter d and
// full protected height h, per the mk(D,H) constructor signature §4.6
// describes for the Recovery Engine's shrinking cylinder.
func NewCylinder(d, h float64) *Cylinder {
	return &Cylinder{HorizontalRadius: d / 2, VerticalRadius: h / 2}
}

// AsFactory adapts NewCylinder to the bands.CylinderDetectorFactory shape.
func AsFactory() bands.CylinderDetectorFactory {
	return func(d, h float64) bands.ConflictDetector { return NewCylinder(d, h) }
}

// ConflictDetection implements bands.ConflictDetector.
func (c *Cylinder) ConflictDetection(sOwn, vOwn, sAc, vAc bands.Vec3, b, t float64) bands.ConflictData {
	dx, dy, dz := sAc.X-sOwn.X, sAc.Y-sOwn.Y, sAc.Z-sOwn.Z
	dvx, dvy, dvz := vAc.X-vOwn.X, vAc.Y-vOwn.Y, vAc.Z-vOwn.Z

	hLo, hHi, hOk := quadraticViolationInterval(dvx*dvx+dvy*dvy, 2*(dx*dvx+dy*dvy), dx*dx+dy*dy-c.HorizontalRadius*c.HorizontalRadius)
	if !hOk {
		return bands.ConflictData{Conflict: false}
	}

	vLo, vHi, vOk := linearVerticalViolationInterval(dz, dvz, c.VerticalRadius)
	if !vOk {
		return bands.ConflictData{Conflict: false}
	}

	lo := math.Max(math.Max(hLo, vLo), b)
	hi := math.Min(math.Min(hHi, vHi), t)
	if lo > hi {
		return bands.ConflictData{Conflict: false}
	}
	return bands.ConflictData{Conflict: true, TimeIn: lo, TimeOut: hi}
}

// quadraticViolationInterval returns the (possibly infinite) interval of
// s over which A*s^2 + B*s + C < 0, or ok=false if the quadratic is never
// negative. A is always >= 0 here (sum of squared relative-velocity
// components).
func quadraticViolationInterval(a, b, c float64) (lo, hi float64, ok bool) {
	const eps = 1e-12
	if a < eps {
		if b > eps {
			return math.Inf(-1), -c / b, true
		}
		if b < -eps {
			return -c / b, math.Inf(1), true
		}
		if c < 0 {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}

	disc := b*b - 4*a*c
	if disc <= 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	r1, r2 := (-b-sq)/(2*a), (-b+sq)/(2*a)
	return math.Min(r1, r2), math.Max(r1, r2), true
}

// linearVerticalViolationInterval returns the interval of s over which
// |dz0 + dvz*s| < radius.
func linearVerticalViolationInterval(dz0, dvz, radius float64) (lo, hi float64, ok bool) {
	const eps = 1e-12
	if math.Abs(dvz) < eps {
		if math.Abs(dz0) < radius {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}
	s1 := (-radius - dz0) / dvz
	s2 := (radius - dz0) / dvz
	return math.Min(s1, s2), math.Max(s1, s2), true
}
