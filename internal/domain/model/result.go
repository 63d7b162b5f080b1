package model

import (
	"fmt"
	"strings"
)

// ComponentScores holds the four named sub-scores of a gap result, each in [0,1].
type ComponentScores struct {
	Skills           float64 `json:"skills"`
	Responsibilities float64 `json:"responsibilities"`
	Ambitions        float64 `json:"ambitions"`
	Dedication       float64 `json:"dedication"`
}

// GapResult is the computed compatibility of one employee-role pair. It is
// created exactly once by the gap calculator and never mutated afterwards.
type GapResult struct {
	EmployeeID   string          `json:"employee_id"`
	RoleID       string          `json:"role_id"`
	OverallScore float64         `json:"overall_score"`
	Band         GapBand         `json:"band"`
	Components   ComponentScores `json:"component_scores"`
	DetailedGaps []string        `json:"detailed_gaps,omitempty"`
}

// IsReady reports whether the pair sits in a ready-or-better band.
func (r GapResult) IsReady() bool {
	return r.Band.IsReady()
}

// Detailed-gap lines share fixed shapes so that downstream aggregation can
// recognize them without re-deriving scores.
const (
	skillGapPrefix = "skill gap: "

	// ResponsibilityGapLine flags a responsibilities component below 0.6.
	ResponsibilityGapLine = "significant gap in comparable responsibilities"
	// AmbitionGapLine flags an ambitions component below 0.5.
	AmbitionGapLine = "role not aligned with stated ambitions"
	// DedicationGapLine flags a dedication component below 0.7.
	DedicationGapLine = "gap in weekly availability"
)

// SkillGapLine formats the per-skill blocking line recorded on a result.
func SkillGapLine(skillName string, current SkillLevel) string {
	return fmt.Sprintf("%s%s (current: %s)", skillGapPrefix, skillName, current)
}

// SkillNameFromGapLine recovers the skill name from a skill-gap line.
// The second return is false for lines of any other shape.
func SkillNameFromGapLine(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, skillGapPrefix)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(rest, " (current:")
	return strings.TrimSpace(name), name != ""
}
