// Package gapcalc implements the scoring kernel: a pure calculation of how
// well one employee fits one target role, expressed as four weighted
// component scores, an overall score in [0,1], a readiness band, and a list
// of specific blocking gaps.
package gapcalc

import (
	"context"
	"math"
	"strings"

	"github.com/quether/talentgap/internal/domain/model"
	"github.com/quether/talentgap/internal/domain/vocab"
	"github.com/quether/talentgap/pkg/logger"
)

// Detail thresholds decide which gap lines get recorded. They are independent
// of the banding thresholds.
const (
	skillDetailThreshold          = 0.7
	responsibilityDetailThreshold = 0.6
	ambitionDetailThreshold       = 0.5
	dedicationDetailThreshold     = 0.7

	// advancedLevelValue marks the proficiency below which a required skill
	// is reported as a gap.
	advancedLevelValue = 0.75

	// dedicationFallbackScore assumes a plausible fit when either dedication
	// range cannot be parsed, rather than penalizing malformed input.
	dedicationFallbackScore = 0.8

	// dedicationDecayHours is the non-overlap distance at which the
	// dedication score reaches zero.
	dedicationDecayHours = 20.0
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithWeights sets the component weights. Off-sum weights are rescaled
// proportionally so they sum to 1.0.
func WithWeights(w Weights) Option {
	return func(c *Calculator) {
		c.weights = w.Normalized()
	}
}

// WithThresholds sets the banding cut-offs.
func WithThresholds(t Thresholds) Option {
	return func(c *Calculator) {
		c.thresholds = t
	}
}

// WithVocabulary replaces the keyword vocabulary used for responsibility and
// ambition matching.
func WithVocabulary(v vocab.Vocabulary) Option {
	return func(c *Calculator) {
		if len(v) > 0 {
			c.vocab = v
		}
	}
}

// WithProgressionRules replaces the responsibility progression patterns.
func WithProgressionRules(rules []vocab.ProgressionRule) Option {
	return func(c *Calculator) {
		c.rules = rules
	}
}

// WithLogger sets a logger for parse-fallback reporting. Without one the
// calculator stays silent.
func WithLogger(log logger.Logger) Option {
	return func(c *Calculator) {
		c.log = log
	}
}

// Calculator scores employee-role pairs against a fixed skill catalog.
type Calculator struct {
	catalog    map[string]model.Skill
	weights    Weights
	thresholds Thresholds
	vocab      vocab.Vocabulary
	rules      []vocab.ProgressionRule
	log        logger.Logger
}

// New creates a Calculator over the given skill catalog.
func New(catalog map[string]model.Skill, opts ...Option) *Calculator {
	c := &Calculator{
		catalog:    catalog,
		weights:    DefaultWeights(),
		thresholds: DefaultThresholds(),
		vocab:      vocab.Default(),
		rules:      vocab.DefaultProgressionRules(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weights returns the (normalized) component weights in use.
func (c *Calculator) Weights() Weights {
	return c.weights
}

// Thresholds returns the banding cut-offs in use.
func (c *Calculator) Thresholds() Thresholds {
	return c.thresholds
}

// CalculateGap scores one employee against one target role. The call is pure:
// skill ids absent from the catalog are skipped, malformed dedication ranges
// fall back to a fixed score, and no error paths remain at this point.
func (c *Calculator) CalculateGap(employee model.Employee, role model.Role) model.GapResult {
	components := model.ComponentScores{
		Skills:           c.skillsMatch(employee, role),
		Responsibilities: c.responsibilitiesAlignment(employee, role),
		Ambitions:        c.ambitionsMatch(employee, role),
		Dedication:       c.dedicationCompatibility(employee, role),
	}

	overall := components.Skills*c.weights.Skills +
		components.Responsibilities*c.weights.Responsibilities +
		components.Ambitions*c.weights.Ambitions +
		components.Dedication*c.weights.Dedication

	return model.GapResult{
		EmployeeID:   employee.ID,
		RoleID:       role.ID,
		OverallScore: overall,
		Band:         c.thresholds.Classify(overall),
		Components:   components,
		DetailedGaps: c.detailedGaps(employee, role, components),
	}
}

// skillsMatch is the weighted mean of the employee's proficiency over the
// role's required skills, weighted by each skill's normalized importance.
func (c *Calculator) skillsMatch(employee model.Employee, role model.Role) float64 {
	if len(role.RequiredSkills) == 0 {
		return 1.0
	}

	var weightedSum, totalWeight float64
	resolved := 0
	for _, skillID := range role.RequiredSkills {
		info, ok := c.catalog[skillID]
		if !ok {
			continue // unknown skill ids are skipped, not errors
		}
		w := info.NormalizedWeight()
		weightedSum += employee.SkillLevel(skillID).Numeric() * w
		totalWeight += w
		resolved++
	}

	if resolved == 0 {
		return 0.0 // no required skill resolved in the catalog
	}
	if totalWeight > 0 {
		return weightedSum / totalWeight
	}
	// Every resolved skill carries zero weight; treat them as equally
	// important.
	return weightedSum / float64(resolved)
}

// responsibilitiesAlignment measures keyword overlap between what the
// employee does today and what the role expects, plus a capped progression
// bonus for known growth patterns.
func (c *Calculator) responsibilitiesAlignment(employee model.Employee, role model.Role) float64 {
	if len(role.Responsibilities) == 0 {
		return 1.0
	}
	if len(employee.Responsibilities) == 0 {
		return 0.0
	}

	targetKeywords := c.vocab.Extract(role.Responsibilities)
	if len(targetKeywords) == 0 {
		return 1.0
	}
	currentKeywords := c.vocab.Extract(employee.Responsibilities)

	base := float64(vocab.Intersection(currentKeywords, targetKeywords)) / float64(len(targetKeywords))
	bonus := vocab.ProgressionBonus(c.rules,
		strings.Join(employee.Responsibilities, " "),
		strings.Join(role.Responsibilities, " "),
	)
	return math.Min(base+bonus, 1.0)
}

// ambitionsMatch measures how well the role lines up with what the employee
// says they want. No stated ambitions score a neutral 0.5.
func (c *Calculator) ambitionsMatch(employee model.Employee, role model.Role) float64 {
	if len(employee.Ambitions) == 0 {
		return 0.5
	}

	ambitionKeywords := c.vocab.Extract(employee.Ambitions)
	roleContext := role.Title + " " + strings.Join(role.Responsibilities, " ")
	roleKeywords := c.vocab.Extract([]string{roleContext})

	base := 0.0
	if len(ambitionKeywords) > 0 {
		base = float64(vocab.Intersection(ambitionKeywords, roleKeywords)) / float64(len(ambitionKeywords))
	}

	// Level-alignment bonuses are mutually exclusive fallbacks, checked in
	// priority order.
	ambitionText := strings.ToLower(strings.Join(employee.Ambitions, " "))
	seniority := strings.ToLower(role.Seniority)
	var bonus float64
	switch {
	case seniority != "" && strings.Contains(ambitionText, seniority):
		bonus = 0.20
	case strings.Contains(ambitionText, "lead") && strings.Contains(seniority, "lead"):
		bonus = 0.20
	case strings.Contains(ambitionText, "senior") && strings.Contains(seniority, "senior"):
		bonus = 0.15
	}

	return math.Min(base+bonus, 1.0)
}

// dedicationCompatibility compares weekly-hours ranges: proportional coverage
// when they overlap, linear decay with distance when they do not.
func (c *Calculator) dedicationCompatibility(employee model.Employee, role model.Role) float64 {
	empRange, empErr := model.ParseHourRange(employee.Dedication)
	roleRange, roleErr := model.ParseHourRange(role.Dedication)
	if empErr != nil || roleErr != nil {
		if c.log != nil {
			c.log.Debug(context.Background(), "dedication range unparseable, using fallback score",
				logger.String("employee", employee.ID),
				logger.String("role", role.ID),
			)
		}
		return dedicationFallbackScore
	}

	overlapMin := max(empRange.Min, roleRange.Min)
	overlapMax := min(empRange.Max, roleRange.Max)

	if overlapMin > overlapMax {
		distance := min(abs(empRange.Max-roleRange.Min), abs(roleRange.Max-empRange.Min))
		return math.Max(0.0, 1.0-float64(distance)/dedicationDecayHours)
	}

	if roleRange.Width() == 0 {
		return 1.0 // exact-dedication role covered by the overlap
	}
	return float64(overlapMax-overlapMin) / float64(roleRange.Width())
}

// detailedGaps records the human-readable blocking gaps for a scored pair.
func (c *Calculator) detailedGaps(employee model.Employee, role model.Role, components model.ComponentScores) []string {
	var gaps []string

	if components.Skills < skillDetailThreshold {
		for _, skillID := range role.RequiredSkills {
			level := employee.SkillLevel(skillID)
			if level.Numeric() >= advancedLevelValue {
				continue
			}
			name := skillID
			if info, ok := c.catalog[skillID]; ok {
				name = info.Name
			}
			gaps = append(gaps, model.SkillGapLine(name, level))
		}
	}
	if components.Responsibilities < responsibilityDetailThreshold {
		gaps = append(gaps, model.ResponsibilityGapLine)
	}
	if components.Ambitions < ambitionDetailThreshold {
		gaps = append(gaps, model.AmbitionGapLine)
	}
	if components.Dedication < dedicationDetailThreshold {
		gaps = append(gaps, model.DedicationGapLine)
	}
	return gaps
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
