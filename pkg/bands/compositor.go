// pkg/bands/compositor.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"math"
	"sort"

	"github.com/mmp/daabands/pkg/log"
	"github.com/mmp/daabands/pkg/util"
)

// levelResult is compute's per-level intermediate: the none-set found for
// that alert level and the region it paints when in conflict.
type levelResult struct {
	region BandsRegion
	none   IntervalSet
}

// Bands is the band-synthesis core: it ties a cached, lazily recomputed
// colored-band list to the enclosing core's ownship, traffic, alertor,
// and conflict-detector collaborators. The zero value is not usable;
// construct with NewBands.
type Bands struct {
	Domain  *DomainParams
	Alertor Alertor
	Oracle  Oracle
	Core    CoreParams

	Ownship OwnshipState
	Traffic []TrafficState

	CylinderFactory CylinderDetectorFactory
	NMACDiameter    float64
	NMACHeight      float64

	logger *log.Logger

	outdated     bool
	ranges       []BandsRange
	recoveryTime float64
	peripheral   map[int][]TrafficState
	errLog       *util.ErrorLogger
}

// NewBands constructs a Bands instance. The cache starts outdated; the
// first query triggers ForceCompute.
func NewBands(domain *DomainParams, alertor Alertor, oracle Oracle, core CoreParams, ownship OwnshipState, traffic []TrafficState, cylFactory CylinderDetectorFactory, nmacD, nmacH float64, logger *log.Logger) *Bands {
	return &Bands{
		Domain:          domain,
		Alertor:         alertor,
		Oracle:          oracle,
		Core:            core,
		Ownship:         ownship,
		Traffic:         traffic,
		CylinderFactory: cylFactory,
		NMACDiameter:    nmacD,
		NMACHeight:      nmacH,
		logger:          logger,
		outdated:        true,
		recoveryTime:    math.NaN(),
		peripheral:      make(map[int][]TrafficState),
	}
}

// Reset marks the cache outdated, forcing a recompute on the next query.
func (b *Bands) Reset() {
	b.outdated = true
}

// ensureComputed recomputes the cache if the outdated flag is set.
func (b *Bands) ensureComputed() {
	if b.outdated {
		b.ForceCompute()
	}
}

// ForceCompute recomputes the band list unconditionally.
func (b *Bands) ForceCompute() {
	b.errLog = new(util.ErrorLogger)
	b.outdated = false
	b.recoveryTime = math.NaN()
	b.ranges = nil
	b.peripheral = make(map[int][]TrafficState)

	if b.Ownship == nil || !b.Domain.CheckInput(b.Ownship.OwnVal(), b.errLog) {
		if b.logger != nil {
			b.logger.Warn("bands: invalid configuration, all queries degraded", "errors", b.errLog.String())
		}
		return
	}

	if b.logger != nil {
		b.logger.Debug("bands: recomputing", "own_val", b.Ownship.OwnVal())
	}

	mostSevere := b.Alertor.MostSevereAlertLevel()
	conflictLevel := b.Alertor.ConflictAlertLevel()
	results := make(map[int]levelResult, mostSevere)

	lowestProcessed := 0
	lastLevel := 1
	recoveryTriggered := false

	for L := 1; L <= mostSevere && !recoveryTriggered; L++ {
		lvl := b.Alertor.Level(L)
		if !lvl.Region.IsConflictBand() {
			continue
		}
		if lowestProcessed == 0 {
			lowestProcessed = L
		}

		peripheral := classifyPeripheral(b.Oracle, b.baseOracleParams(lvl, lvl.AlertingTime), lvl.Detector, lvl.AlertingTime, b.Traffic, b.Ownship)
		b.peripheral[L] = peripheral
		conflictAc := b.Core.ConflictAircraft(L)

		var none IntervalSet
		region := lvl.Region
		if len(peripheral)+len(conflictAc) == 0 {
			none = b.fullDomainSet()
		} else {
			base := b.baseOracleParams(lvl, lvl.AlertingTime)
			none = computeNoneBands(b.Oracle, b.Domain, base, lvl.Detector, lvl.LateAlertingTime, peripheral, conflictAc)

			if none.Empty() && b.Domain.Recovery() && L == conflictLevel {
				alertingSet := make([]TrafficState, 0, len(peripheral)+len(conflictAc))
				alertingSet = append(alertingSet, peripheral...)
				alertingSet = append(alertingSet, conflictAc...)
				b.recoveryTime = b.runRecovery(lvl, alertingSet)
				lastLevel = L
				recoveryTriggered = true
				region = b.Alertor.Level(b.Alertor.LastGuidanceLevel()).Region
			}
		}

		results[L] = levelResult{region: region, none: none}
	}

	if !recoveryTriggered {
		lastLevel = lowestProcessed
		if lastLevel == 0 {
			lastLevel = 1
		}
	}

	b.ranges = b.colorBands(results, mostSevere, lastLevel, recoveryTriggered)
}

// baseOracleParams assembles the OracleParams shared by a level's two
// Combine calls, before computeNoneBands overrides Traffic/T/Detector as
// needed for the "late" horizon.
func (b *Bands) baseOracleParams(lvl AlertLevel, t float64) OracleParams {
	return OracleParams{
		Detector:         lvl.Detector,
		Dt:               b.Ownship.TimeStep(),
		Step:             b.Domain.Step(),
		B:                0,
		T:                t,
		MaxDown:          b.Domain.MaxDown(),
		MaxUp:            b.Domain.MaxUp(),
		Ownship:          b.Ownship,
		CriteriaAircraft: b.Core.CriteriaAircraft,
		EpsH:             b.Core.EpsilonH,
		EpsV:             b.Core.EpsilonV,
	}
}

// fullDomainSet returns the entire reachable range as a single
// (or, if wrapped, two-segment) IntervalSet.
func (b *Bands) fullDomainSet() IntervalSet {
	var s IntervalSet
	min, max := b.Domain.MinVal(), b.Domain.MaxVal()
	if b.Domain.Mod() > 0 && AlmostGreater(min, max) {
		s.AlmostAdd(min, b.Domain.Mod())
		s.AlmostAdd(0, max)
	} else {
		s.AlmostAdd(min, max)
	}
	return s
}

// colorBands synthesizes the final ranges list (§4.7, color_bands): the
// background is seeded at the most severe level's region across the
// full domain, then each level's none-set is painted over it in
// descending severity order so the lightest applicable color always
// wins at a given point.
func (b *Bands) colorBands(results map[int]levelResult, mostSevere, lastLevel int, recoveryTriggered bool) []BandsRange {
	min, max := b.Domain.MinVal(), b.Domain.MaxVal()
	wrapped := b.Domain.Mod() > 0 && AlmostGreater(min, max)
	mod := b.Domain.Mod()

	background := RegionNone
	if mostSevere >= 1 {
		background = b.Alertor.Level(mostSevere).Region
	}

	var l1, l2 []ColoredValue
	if wrapped {
		l1 = newColoredValueList(0, max, background)
		l2 = newColoredValueList(min, mod, background)
	} else {
		l1 = newColoredValueList(min, max, background)
	}

	// processedLevels is the ascending list of levels that actually got a
	// results entry (conflict-band levels only; an informational,
	// non-conflict level never appears here). The "previous" level below
	// L for the default paint case is the nearest entry in this list, not
	// necessarily L-1.
	processedLevels := make([]int, 0, len(results))
	for L := range results {
		processedLevels = append(processedLevels, L)
	}
	sort.Ints(processedLevels)
	prevProcessed := make(map[int]int, len(processedLevels))
	for i, L := range processedLevels {
		if i > 0 {
			prevProcessed[L] = processedLevels[i-1]
		}
	}

	for L := mostSevere; L >= lastLevel; L-- {
		res, ok := results[L]
		if !ok {
			continue
		}

		var ubColor BandsRegion
		switch {
		case L == lastLevel && recoveryTriggered:
			ubColor = RegionRecovery
		case L == lastLevel:
			ubColor = RegionNone
		default:
			if prev, ok := prevProcessed[L]; ok {
				ubColor = results[prev].region
			} else {
				ubColor = RegionNone
			}
		}

		for _, iv := range res.none {
			if AlmostLeq(iv.Up, max) && !(wrapped && AlmostGreater(iv.Low, max) && AlmostLess(iv.Up, min)) {
				l1 = insertColoredRange(l1, iv.Low, iv.Up, ubColor)
			} else {
				l2 = insertColoredRange(l2, iv.Low, iv.Up, ubColor)
			}
		}

		if L == lastLevel {
			break
		}
	}

	out := toBands(l1)
	if wrapped {
		out = append(out, toBands(l2)...)
	}
	return out
}
