// Package analyzer aggregates a populated compatibility matrix into
// organization-wide signals: which skills block the most transitions, which
// chapters are under-prepared, where training money pays off, and what to do
// about it. Outputs are structured records; prose generation belongs to an
// external collaborator.
package analyzer

import (
	"sort"

	"github.com/quether/talentgap/internal/domain/model"
)

// Defaults for the analyzer's tunables.
const (
	DefaultBottleneckThreshold = 20.0    // gap percentage
	DefaultTrainingCost        = 2000.0  // per employee per skill
	DefaultPromotionValue      = 15000.0 // value of one unlocked promotion

	// trainingSuccessRate discounts expected promotions from training.
	trainingSuccessRate = 0.7
	// highPotentialScore marks affected employees close enough to benefit.
	highPotentialScore = 0.6
	// criticalSkillLimit caps the per-chapter critical skill list.
	criticalSkillLimit = 5
	// chapterRecommendationLimit caps templated chapter recommendations.
	chapterRecommendationLimit = 3
)

// Chapter health labels.
const (
	HealthHealthy        = "HEALTHY"
	HealthNeedsAttention = "NEEDS_ATTENTION"
	HealthCritical       = "CRITICAL"
)

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithBottleneckThreshold sets the matrix-derived bottleneck gap floor.
func WithBottleneckThreshold(pct float64) Option {
	return func(a *Analyzer) {
		if pct > 0 {
			a.bottleneckThreshold = pct
		}
	}
}

// WithTrainingEconomics sets the per-skill training cost and promotion value
// used by ROI estimation.
func WithTrainingEconomics(costPerSkill, promotionValue float64) Option {
	return func(a *Analyzer) {
		if costPerSkill > 0 {
			a.trainingCost = costPerSkill
		}
		if promotionValue > 0 {
			a.promotionValue = promotionValue
		}
	}
}

// WithEmployees injects the employee list the demand-based bottleneck
// calculation counts skill holders against.
func WithEmployees(employees []model.Employee) Option {
	return func(a *Analyzer) {
		a.employees = employees
	}
}

// WithDemandOutlook injects the future capability demand records that enable
// the demand-based bottleneck strategy.
func WithDemandOutlook(outlook []DemandRecord) Option {
	return func(a *Analyzer) {
		a.outlook = outlook
	}
}

// Analyzer computes aggregate gap statistics over read-only inputs.
type Analyzer struct {
	bottleneckThreshold float64
	trainingCost        float64
	promotionValue      float64
	employees           []model.Employee
	outlook             []DemandRecord
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		bottleneckThreshold: DefaultBottleneckThreshold,
		trainingCost:        DefaultTrainingCost,
		promotionValue:      DefaultPromotionValue,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AffectedPair is one employee-role transition blocked by a skill.
type AffectedPair struct {
	EmployeeID   string  `json:"employee_id"`
	RoleID       string  `json:"role_id"`
	OverallScore float64 `json:"overall_score"`
}

// SkillGap aggregates how badly one skill blocks transitions across the
// organization.
type SkillGap struct {
	SkillID            string         `json:"skill_id"`
	SkillName          string         `json:"skill_name"`
	Category           string         `json:"category"`
	Weight             float64        `json:"weight"`
	RoleIDs            []string       `json:"role_ids"`
	RolesRequiring     int            `json:"roles_requiring"`
	EmployeesWithGap   int            `json:"employees_with_gap"`
	BlockedTransitions int            `json:"blocked_transitions"`
	GapPercentage      float64        `json:"gap_percentage"`
	Priority           float64        `json:"priority"`
	ROIEstimate        float64        `json:"roi_estimate"`
	Affected           []AffectedPair `json:"affected,omitempty"`
}

// SkillGaps computes the per-skill aggregate for every skill required by at
// least one role. A pair counts as blocked when the role requires the skill
// and the pair's detailed gaps name it. Results come back sorted by
// (priority, gap percentage) descending.
func (a *Analyzer) SkillGaps(matrix *model.CompatibilityMatrix, skills []model.Skill, roles []model.Role) ([]SkillGap, error) {
	if matrix == nil {
		return nil, ErrNilMatrix
	}

	requiredBy := make(map[string][]string) // skill id -> role ids
	for _, role := range roles {
		for _, skillID := range role.RequiredSkills {
			requiredBy[skillID] = append(requiredBy[skillID], role.ID)
		}
	}

	totalEmployees := len(matrix.EmployeeIDs())
	var out []SkillGap
	for _, skill := range skills {
		roleIDs := requiredBy[skill.ID]
		if len(roleIDs) == 0 {
			continue // nobody requires it, nothing to block
		}
		requiring := make(map[string]struct{}, len(roleIDs))
		for _, id := range roleIDs {
			requiring[id] = struct{}{}
		}

		gap := SkillGap{
			SkillID:        skill.ID,
			SkillName:      skill.Name,
			Category:       skill.Category,
			Weight:         skill.Weight,
			RoleIDs:        roleIDs,
			RolesRequiring: len(roleIDs),
		}

		matrix.All(func(r model.GapResult) {
			if _, ok := requiring[r.RoleID]; !ok {
				return
			}
			if !namesSkill(r.DetailedGaps, skill.Name) {
				return
			}
			gap.Affected = append(gap.Affected, AffectedPair{
				EmployeeID:   r.EmployeeID,
				RoleID:       r.RoleID,
				OverallScore: r.OverallScore,
			})
			gap.BlockedTransitions++
		})

		gap.EmployeesWithGap = len(gap.Affected)
		if demand := gap.RolesRequiring * totalEmployees; demand > 0 {
			gap.GapPercentage = float64(gap.BlockedTransitions) / float64(demand) * 100
		}
		gap.Priority = skillPriority(skill.NormalizedWeight(), gap.GapPercentage, gap.RolesRequiring)
		gap.ROIEstimate = roughROI(gap.Affected, skill.Weight)
		out = append(out, gap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		if out[i].GapPercentage != out[j].GapPercentage {
			return out[i].GapPercentage > out[j].GapPercentage
		}
		return out[i].SkillID < out[j].SkillID
	})
	return out, nil
}

// namesSkill reports whether any detailed-gap line blocks on the named skill.
func namesSkill(gaps []string, skillName string) bool {
	for _, line := range gaps {
		if name, ok := model.SkillNameFromGapLine(line); ok && name == skillName {
			return true
		}
	}
	return false
}

// skillPriority weighs importance, observed gap and demand breadth.
func skillPriority(normalizedWeight, gapPercentage float64, rolesRequiring int) float64 {
	breadth := float64(rolesRequiring) / 5.0
	if breadth > 1.0 {
		breadth = 1.0
	}
	return normalizedWeight * (gapPercentage / 100.0) * breadth
}

// roughROI is the coarse in-gap ROI signal the strategic recommendations
// filter on; the full economics live in TrainingROI.
func roughROI(affected []AffectedPair, rawWeight float64) float64 {
	if len(affected) == 0 {
		return 0
	}
	highPotential := 0
	for _, p := range affected {
		if p.OverallScore > highPotentialScore {
			highPotential++
		}
	}
	return float64(highPotential) * rawWeight / float64(len(affected))
}

// SkillMention is one named-skill tally parsed from detailed-gap text.
type SkillMention struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// ChapterGap aggregates readiness for one chapter's internal transitions.
type ChapterGap struct {
	Chapter             string         `json:"chapter"`
	TotalEmployees      int            `json:"total_employees"`
	TotalRoles          int            `json:"total_roles"`
	TotalTransitions    int            `json:"total_transitions"`
	ReadyTransitions    int            `json:"ready_transitions"`
	ReadinessPercentage float64        `json:"readiness_percentage"`
	CriticalSkills      []SkillMention `json:"critical_skills"`
	Health              string         `json:"health"`
	Recommendations     []string       `json:"recommendations"`
}

// ChapterGaps computes readiness per chapter over the (employee-in-chapter,
// role-in-chapter) pairs present in the matrix. Chapters without both
// employees and roles are skipped.
func (a *Analyzer) ChapterGaps(matrix *model.CompatibilityMatrix, employees []model.Employee, roles []model.Role, chapters []model.Chapter) ([]ChapterGap, error) {
	if matrix == nil {
		return nil, ErrNilMatrix
	}

	employeesByChapter := make(map[string][]model.Employee)
	for _, emp := range employees {
		employeesByChapter[emp.Chapter] = append(employeesByChapter[emp.Chapter], emp)
	}
	rolesByChapter := make(map[string][]model.Role)
	for _, role := range roles {
		rolesByChapter[role.Chapter] = append(rolesByChapter[role.Chapter], role)
	}

	var out []ChapterGap
	for _, chapter := range chapters {
		chapterEmployees := employeesByChapter[chapter.Name]
		chapterRoles := rolesByChapter[chapter.Name]
		if len(chapterEmployees) == 0 || len(chapterRoles) == 0 {
			continue
		}

		gap := ChapterGap{
			Chapter:        chapter.Name,
			TotalEmployees: len(chapterEmployees),
			TotalRoles:     len(chapterRoles),
		}
		mentions := make(map[string]int)
		for _, emp := range chapterEmployees {
			for _, role := range chapterRoles {
				r, ok := matrix.Result(emp.ID, role.ID)
				if !ok {
					continue
				}
				gap.TotalTransitions++
				if r.IsReady() {
					gap.ReadyTransitions++
				}
				for _, line := range r.DetailedGaps {
					if name, ok := model.SkillNameFromGapLine(line); ok {
						mentions[name]++
					}
				}
			}
		}

		if gap.TotalTransitions > 0 {
			gap.ReadinessPercentage = float64(gap.ReadyTransitions) / float64(gap.TotalTransitions) * 100
		}
		gap.CriticalSkills = topMentions(mentions, criticalSkillLimit)
		gap.Health = chapterHealth(gap.ReadinessPercentage)
		gap.Recommendations = chapterRecommendations(gap.ReadinessPercentage, gap.CriticalSkills)
		out = append(out, gap)
	}
	return out, nil
}

// topMentions keeps the most-counted skills, ties broken by name.
func topMentions(mentions map[string]int, limit int) []SkillMention {
	out := make([]SkillMention, 0, len(mentions))
	for skill, count := range mentions {
		out = append(out, SkillMention{Skill: skill, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func chapterHealth(readinessPct float64) string {
	switch {
	case readinessPct >= 60:
		return HealthHealthy
	case readinessPct >= 30:
		return HealthNeedsAttention
	default:
		return HealthCritical
	}
}

// chapterRecommendations emits 1-3 templated lines driven by the health label
// and the top critical skills.
func chapterRecommendations(readinessPct float64, critical []SkillMention) []string {
	var recs []string
	switch {
	case readinessPct < 30:
		recs = append(recs,
			"urgent: launch an accelerated development plan",
			"consider external hiring for critical roles",
		)
	case readinessPct < 60:
		recs = append(recs, "run a structured development program")
	}
	for _, mention := range critical {
		if len(recs) >= chapterRecommendationLimit {
			break
		}
		recs = append(recs, "reinforce training in "+mention.Skill)
	}
	if len(recs) == 0 {
		recs = append(recs, "maintain the current development cadence")
	}
	return recs
}
