// pkg/alerting/alerting.go
// Copyright(c) 2022-2026 daabands contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package alerting supplies a JSON-configured bands.Alertor: a small
// ordered table of alert levels, each with a protected-cylinder detector
// and alerting/late-alerting horizons, following the conventional DAA
// severity ladder (FAR, MID, NEAR) plus the terminal RECOVERY/NONE
// regions the Band Compositor needs.
package alerting

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mmp/daabands/pkg/bands"
	"github.com/mmp/daabands/pkg/detectors"
)

// LevelConfig is the on-disk JSON shape of a single alert level.
type LevelConfig struct {
	Region           string  `json:"region"`
	DetectorDiameter float64 `json:"detector_diameter_m"`
	DetectorHeight   float64 `json:"detector_height_m"`
	AlertingTime     float64 `json:"alerting_time_s"`
	LateAlertingTime float64 `json:"late_alerting_time_s"`
}

// Config is the on-disk JSON shape of a full alertor: an ascending-
// severity level table plus the two level indices the Band Compositor
// consults: the conflict level, at which recovery may trigger, and the
// last-guidance level, whose region the triggering level takes when it
// does.
type Config struct {
	Levels            []LevelConfig `json:"levels"`
	ConflictLevel     int           `json:"conflict_level"`
	LastGuidanceLevel int           `json:"last_guidance_level"`
}

// Alertor is the loaded, ready-to-use bands.Alertor implementation.
type Alertor struct {
	levels            []bands.AlertLevel
	conflictLevel     int
	lastGuidanceLevel int
}

// Load decodes a Config from r and builds an Alertor from it.
func Load(r io.Reader) (*Alertor, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("alerting: decode config: %w", err)
	}
	return FromConfig(cfg)
}

// FromConfig builds an Alertor from an already-decoded Config, validating
// each level's region name and that conflict_level names one of the
// levels. last_guidance_level is not range-checked.
func FromConfig(cfg Config) (*Alertor, error) {
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("alerting: config has no levels")
	}
	a := &Alertor{conflictLevel: cfg.ConflictLevel, lastGuidanceLevel: cfg.LastGuidanceLevel}
	for i, lc := range cfg.Levels {
		region, err := parseRegion(lc.Region)
		if err != nil {
			return nil, fmt.Errorf("alerting: level %d: %w", i+1, err)
		}
		a.levels = append(a.levels, bands.AlertLevel{
			Region:           region,
			Detector:         detectors.NewCylinder(lc.DetectorDiameter, lc.DetectorHeight),
			AlertingTime:     lc.AlertingTime,
			LateAlertingTime: lc.LateAlertingTime,
		})
	}
	if a.conflictLevel < 1 || a.conflictLevel > len(a.levels) {
		return nil, fmt.Errorf("alerting: conflict_level %d out of range [1,%d]", a.conflictLevel, len(a.levels))
	}
	return a, nil
}

func parseRegion(s string) (bands.BandsRegion, error) {
	switch s {
	case "FAR":
		return bands.RegionFar, nil
	case "MID":
		return bands.RegionMid, nil
	case "NEAR":
		return bands.RegionNear, nil
	case "RECOVERY":
		return bands.RegionRecovery, nil
	case "NONE":
		return bands.RegionNone, nil
	default:
		return bands.RegionUnknown, fmt.Errorf("unrecognized region %q", s)
	}
}

// Default returns the conventional three-level DAA ladder (FAR, MID,
// NEAR) with the conflict level set to NEAR (level 3) and the
// last-guidance level set to FAR (level 1), a reasonable starting point
// for callers that don't have a site-specific alerting configuration yet.
func Default() *Alertor {
	a, err := FromConfig(Config{
		Levels: []LevelConfig{
			{Region: "FAR", DetectorDiameter: 9260, DetectorHeight: 450, AlertingTime: 55, LateAlertingTime: 75},
			{Region: "MID", DetectorDiameter: 4556, DetectorHeight: 300, AlertingTime: 55, LateAlertingTime: 75},
			{Region: "NEAR", DetectorDiameter: 1852, DetectorHeight: 150, AlertingTime: 25, LateAlertingTime: 35},
		},
		ConflictLevel:     3,
		LastGuidanceLevel: 1,
	})
	if err != nil {
		panic(err) // the literal above is statically valid; a failure here is a programmer error
	}
	return a
}

func (a *Alertor) MostSevereAlertLevel() int { return len(a.levels) }
func (a *Alertor) ConflictAlertLevel() int   { return a.conflictLevel }
func (a *Alertor) LastGuidanceLevel() int    { return a.lastGuidanceLevel }

// Level returns the 1-indexed alert level i (1 = least severe).
func (a *Alertor) Level(i int) bands.AlertLevel {
	if i < 1 || i > len(a.levels) {
		return bands.AlertLevel{}
	}
	return a.levels[i-1]
}
