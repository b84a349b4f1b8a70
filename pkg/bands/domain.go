// pkg/bands/domain.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"errors"
	"math"

	"github.com/mmp/daabands/pkg/util"
)

// Sentinel construction-time errors surfaced only through check_input's
// accumulated ErrorLogger; queries never panic or return an error value on
// their own, per the query-surface contract.
var (
	ErrStepNotPositive   = errors.New("bands: step must be > 0")
	ErrBoundNotFinite    = errors.New("bands: min/max must be finite")
	ErrRelBoundsInvalid  = errors.New("bands: relative domain requires min <= 0 <= max")
	ErrAbsBoundsInvalid  = errors.New("bands: absolute domain requires min <= own_val <= max")
	ErrModSpanTooWide    = errors.New("bands: max - min exceeds mod")
	ErrModSpanTooWideRel = errors.New("bands: max exceeds mod/2 in a relative modular domain")
	ErrModSpanTooWideAbs = errors.New("bands: max exceeds mod in an absolute modular domain")
)

// cacheState is the lazy-recomputation tri-state every cached quantity in
// this package gates on. checked means the cached value was validated
// against the current inputs this epoch and found current; outdated means
// a mutator fired, or the last check failed, and the value must be
// recomputed before use; the zero value (unchecked) behaves like outdated.
// NewDomainParams starts in outdated, so only a DomainParams built without
// it is ever unchecked.
type cacheState int

const (
	unchecked cacheState = iota
	outdated
	checked
)

// DomainParams holds the control-variable geometry for a Bands instance.
// It is immutable except through its set_* mutators, each of which resets
// the derived-geometry cache when the value actually changes.
type DomainParams struct {
	min, max float64
	rel      bool
	mod      float64
	step     float64
	recovery bool

	state cacheState

	ownVal float64

	minVal, maxVal, minRel, maxRel float64
	maxdown, maxup                 int
}

// NewDomainParams constructs a DomainParams with the given configuration.
// The cache starts outdated; the first CheckInput call (driven by
// Bands.ForceCompute) derives the geometry.
func NewDomainParams(min, max float64, rel bool, mod, step float64, recovery bool) *DomainParams {
	return &DomainParams{
		min: min, max: max, rel: rel, mod: mod, step: step, recovery: recovery,
		state: outdated,
	}
}

func (d *DomainParams) Min() float64      { return d.min }
func (d *DomainParams) Max() float64      { return d.max }
func (d *DomainParams) Rel() bool         { return d.rel }
func (d *DomainParams) Mod() float64      { return d.mod }
func (d *DomainParams) Step() float64     { return d.step }
func (d *DomainParams) Recovery() bool    { return d.recovery }

// Circular reports whether mod > 0 and the configured span covers the
// whole period.
func (d *DomainParams) Circular() bool {
	return d.mod > 0 && AlmostEquals(d.max-d.min, d.mod)
}

func (d *DomainParams) invalidate() {
	if d.state != outdated {
		d.state = outdated
	}
}

// SetMin updates the domain's lower bound. A no-op if the value is
// unchanged (within tolerance).
func (d *DomainParams) SetMin(v float64) {
	if AlmostEquals(d.min, v) {
		return
	}
	d.min = v
	d.invalidate()
}

// SetMax updates the domain's upper bound.
func (d *DomainParams) SetMax(v float64) {
	if AlmostEquals(d.max, v) {
		return
	}
	d.max = v
	d.invalidate()
}

// SetRel flips the relative/absolute framing of min/max. Because the
// meaning of min/max inverts (offsets from own_val vs. absolute bounds),
// the old values are discarded to NaN; the caller must re-set both before
// the next compute, or validation will fail.
func (d *DomainParams) SetRel(rel bool) {
	if d.rel == rel {
		return
	}
	d.rel = rel
	d.min = math.NaN()
	d.max = math.NaN()
	d.invalidate()
}

// SetMod updates the wrap modulus. mod <= 0 disables wrap.
func (d *DomainParams) SetMod(mod float64) {
	if AlmostEquals(d.mod, mod) {
		return
	}
	d.mod = mod
	d.invalidate()
}

// SetStep updates the discretization step for the integer maneuver index.
func (d *DomainParams) SetStep(step float64) {
	if AlmostEquals(d.step, step) {
		return
	}
	d.step = step
	d.invalidate()
}

// SetRecovery enables or disables recovery-band synthesis.
func (d *DomainParams) SetRecovery(recovery bool) {
	if d.recovery == recovery {
		return
	}
	d.recovery = recovery
	d.invalidate()
}

// CheckInput validates the current configuration against the ownship's
// current value, pushing one error per violated precondition onto log,
// and, when valid, (re)derives the geometry (§4.1). It returns whether
// the configuration is currently valid; an invalid configuration leaves
// the cache in the outdated state so every query degrades to empty.
func (d *DomainParams) CheckInput(ownVal float64, log *util.ErrorLogger) bool {
	if d.state == checked && AlmostEquals(d.ownVal, ownVal) {
		return true
	}

	ok := true
	push := func(err error) {
		ok = false
		if log != nil {
			log.Error(err)
		}
	}

	if !AlmostGreater(d.step, 0) {
		push(ErrStepNotPositive)
	}
	if math.IsNaN(d.min) || math.IsInf(d.min, 0) || math.IsNaN(d.max) || math.IsInf(d.max, 0) {
		push(ErrBoundNotFinite)
	} else {
		if d.rel {
			if !(AlmostLeq(d.min, 0) && AlmostGeq(d.max, 0)) {
				push(ErrRelBoundsInvalid)
			}
		} else {
			if !(AlmostLeq(d.min, ownVal) && AlmostLeq(ownVal, d.max)) {
				push(ErrAbsBoundsInvalid)
			}
		}
		if d.mod > 0 {
			if AlmostGreater(d.max-d.min, d.mod) {
				push(ErrModSpanTooWide)
			}
			if d.rel {
				if AlmostGreater(d.max, d.mod/2) {
					push(ErrModSpanTooWideRel)
				}
			} else {
				if AlmostGreater(d.max, d.mod) {
					push(ErrModSpanTooWideAbs)
				}
			}
		}
	}

	if !ok {
		d.state = outdated
		return false
	}

	d.ownVal = ownVal
	d.deriveGeometry(ownVal)
	d.state = checked
	return true
}

// deriveGeometry computes min_val, max_val, min_rel, max_rel, maxdown,
// and maxup from the ownship's current value v (§4.1).
func (d *DomainParams) deriveGeometry(v float64) {
	m := d.mod
	circular := d.Circular()

	switch {
	case circular:
		d.minVal = 0
		d.maxVal = m
	case d.rel:
		d.minVal = Modulo(v+d.min, m)
		d.maxVal = Modulo(v+d.max, m)
	default:
		d.minVal = d.min
		d.maxVal = d.max
	}

	switch {
	case circular:
		d.minRel = m / 2
		d.maxRel = m / 2
	case d.rel:
		d.minRel = -d.min
		d.maxRel = d.max
	default:
		d.minRel = Modulo(v-d.min, m)
		d.maxRel = Modulo(d.max-v, m)
	}

	d.maxdown = int(math.Ceil(d.minRel/d.step)) + 1
	if m > 0 && AlmostGreater(float64(d.maxdown)*d.step, m/2) {
		d.maxdown--
	}
	d.maxup = int(math.Ceil(d.maxRel/d.step)) + 1
	if m > 0 && AlmostGreater(float64(d.maxup)*d.step, m/2) {
		d.maxup--
	}
}

func (d *DomainParams) MinVal() float64 { return d.minVal }
func (d *DomainParams) MaxVal() float64 { return d.maxVal }
func (d *DomainParams) MinRel() float64 { return d.minRel }
func (d *DomainParams) MaxRel() float64 { return d.maxRel }
func (d *DomainParams) MaxDown() int    { return d.maxdown }
func (d *DomainParams) MaxUp() int      { return d.maxup }

// Valid reports whether the last CheckInput call succeeded.
func (d *DomainParams) Valid() bool { return d.state == checked }
