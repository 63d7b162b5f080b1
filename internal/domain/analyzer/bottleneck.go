package analyzer

import (
	"sort"

	"github.com/quether/talentgap/internal/domain/model"
)

// BottleneckSource tags which strategy produced a bottleneck record. The two
// strategies rank on different impact scales; callers must not sort records
// from different sources against each other.
type BottleneckSource string

// Bottleneck strategies.
const (
	SourceDemandBased   BottleneckSource = "DEMAND_BASED"
	SourceMatrixDerived BottleneckSource = "MATRIX_DERIVED"
)

// Bottleneck priorities.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"

	highGapPercentage = 60.0
)

// DemandRecord is one skill's projected demand versus current capacity from
// the future capability outlook.
type DemandRecord struct {
	SkillID         string `json:"skill_id"`
	SkillName       string `json:"skill_name"`
	ProjectedDemand int    `json:"projected_demand"`
	CurrentCapacity int    `json:"current_capacity"`
	Critical        bool   `json:"critical"`
	Description     string `json:"description,omitempty"`
}

// Bottleneck is one skill whose scarcity blocks transitions.
type Bottleneck struct {
	Source             BottleneckSource `json:"source"`
	SkillID            string           `json:"skill_id"`
	SkillName          string           `json:"skill_name"`
	GapPercentage      float64          `json:"gap_percentage"`
	BlockedTransitions int              `json:"blocked_transitions"`
	Impact             float64          `json:"impact"`
	Priority           string           `json:"priority"`
	AffectedRoles      []string         `json:"affected_roles,omitempty"`
	ProjectedDemand    int              `json:"projected_demand,omitempty"`
	CurrentCapacity    int              `json:"current_capacity,omitempty"`
}

// BottleneckSkills picks the strategy: demand-based when an outlook was
// injected, matrix-derived otherwise. Every record carries its source tag.
func (a *Analyzer) BottleneckSkills(gaps []SkillGap, roles []model.Role) []Bottleneck {
	if len(a.outlook) > 0 {
		return a.DemandBottlenecks(a.outlook, roles)
	}
	return a.MatrixBottlenecks(gaps)
}

// DemandBottlenecks derives bottlenecks from the future capability outlook:
// for each flagged critical skill, the gap is projected demand versus current
// capacity, and blocked transitions count employees below intermediate
// proficiency times the roles requiring the skill. Sorted by gap percentage
// descending.
func (a *Analyzer) DemandBottlenecks(outlook []DemandRecord, roles []model.Role) []Bottleneck {
	requiredBy := make(map[string][]string)
	for _, role := range roles {
		for _, skillID := range role.RequiredSkills {
			requiredBy[skillID] = append(requiredBy[skillID], role.ID)
		}
	}

	var out []Bottleneck
	for _, rec := range outlook {
		if !rec.Critical || rec.ProjectedDemand <= 0 {
			continue
		}
		gapPct := float64(rec.ProjectedDemand-rec.CurrentCapacity) / float64(rec.ProjectedDemand) * 100
		if gapPct < 0 {
			gapPct = 0
		}

		lacking := 0
		for _, emp := range a.employees {
			if !emp.HasSkillAtLeast(rec.SkillID, model.LevelIntermediate) {
				lacking++
			}
		}
		roleIDs := requiredBy[rec.SkillID]

		priority := PriorityMedium
		if gapPct > highGapPercentage {
			priority = PriorityHigh
		}
		out = append(out, Bottleneck{
			Source:             SourceDemandBased,
			SkillID:            rec.SkillID,
			SkillName:          rec.SkillName,
			GapPercentage:      gapPct,
			BlockedTransitions: lacking * len(roleIDs),
			Impact:             gapPct * float64(rec.ProjectedDemand) / 100,
			Priority:           priority,
			AffectedRoles:      roleIDs,
			ProjectedDemand:    rec.ProjectedDemand,
			CurrentCapacity:    rec.CurrentCapacity,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GapPercentage > out[j].GapPercentage
	})
	return out
}

// MatrixBottlenecks derives bottlenecks from the skill-gap aggregates when no
// demand outlook exists, keeping gaps at or above the threshold. Sorted by
// impact descending. Impact here is on a different scale than the
// demand-based strategy's.
func (a *Analyzer) MatrixBottlenecks(gaps []SkillGap) []Bottleneck {
	var out []Bottleneck
	for _, gap := range gaps {
		if gap.GapPercentage < a.bottleneckThreshold {
			continue
		}
		normalized := gap.Weight / 5.0
		if normalized > 1.0 {
			normalized = 1.0
		}
		priority := PriorityMedium
		if gap.GapPercentage > highGapPercentage {
			priority = PriorityHigh
		}
		out = append(out, Bottleneck{
			Source:             SourceMatrixDerived,
			SkillID:            gap.SkillID,
			SkillName:          gap.SkillName,
			GapPercentage:      gap.GapPercentage,
			BlockedTransitions: gap.BlockedTransitions,
			Impact:             gap.GapPercentage * normalized * float64(gap.RolesRequiring) / 100,
			Priority:           priority,
			AffectedRoles:      gap.RoleIDs,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Impact > out[j].Impact
	})
	return out
}
