// Package model contains the immutable domain records shared across the
// engine: the organization catalogs, skill and readiness scales, per-pair gap
// results and the compatibility matrix.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SkillLevel is the ordinal proficiency scale for a single skill.
type SkillLevel string

// Skill levels, lowest to highest.
const (
	LevelNovice       SkillLevel = "novice"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// Numeric maps a level to its fixed proficiency value. Unknown levels map to
// the novice value; a missing skill is never treated as zero.
func (l SkillLevel) Numeric() float64 {
	switch l {
	case LevelIntermediate:
		return 0.50
	case LevelAdvanced:
		return 0.75
	case LevelExpert:
		return 1.00
	default:
		return 0.25
	}
}

// ParseSkillLevel validates a level string, normalizing case.
func ParseSkillLevel(s string) (SkillLevel, error) {
	switch SkillLevel(strings.ToLower(strings.TrimSpace(s))) {
	case LevelNovice:
		return LevelNovice, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	case LevelAdvanced:
		return LevelAdvanced, nil
	case LevelExpert:
		return LevelExpert, nil
	default:
		return "", fmt.Errorf("unknown skill level: %q", s)
	}
}

// UnmarshalJSON validates levels on decode so catalog documents cannot smuggle
// in an unknown proficiency.
func (l *SkillLevel) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSkillLevel(raw)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// GapBand is the readiness category assigned to a scored employee-role pair.
type GapBand string

// Bands, best to worst.
const (
	BandReady            GapBand = "READY"
	BandReadyWithSupport GapBand = "READY_WITH_SUPPORT"
	BandNear             GapBand = "NEAR"
	BandFar              GapBand = "FAR"
	BandNotViable        GapBand = "NOT_VIABLE"
)

// Bands returns the ordered category set, best first.
func Bands() []GapBand {
	return []GapBand{BandReady, BandReadyWithSupport, BandNear, BandFar, BandNotViable}
}

// IsReady reports whether the band counts as a ready-or-better match.
func (b GapBand) IsReady() bool {
	return b == BandReady || b == BandReadyWithSupport
}
