package model

// Skill is a catalog entry for one organizational skill.
type Skill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Weight   float64  `json:"weight"` // raw importance, 1-5
	Tools    []string `json:"tools,omitempty"`
}

// NormalizedWeight maps the raw 1-5 importance onto [0,1].
func (s Skill) NormalizedWeight() float64 {
	w := s.Weight / 5.0
	if w > 1.0 {
		return 1.0
	}
	return w
}

// Role is a catalog entry for a target position.
type Role struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Seniority        string   `json:"seniority"` // e.g. "Lead", "Senior", "Mid"
	Chapter          string   `json:"chapter"`
	RequiredSkills   []string `json:"required_skills"`
	Responsibilities []string `json:"responsibilities"`
	Dedication       string   `json:"dedication"` // weekly range, e.g. "30-40h"
}

// DedicationHours parses the expected weekly range, falling back to the
// default full-time range when the string is malformed.
func (r Role) DedicationHours() HourRange {
	return parseHoursOrDefault(r.Dedication)
}

// Chapter groups employees and roles into a department.
type Chapter struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	RoleTemplates []string `json:"role_templates,omitempty"`
}

// Employee is a current member of the organization.
type Employee struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Chapter          string                `json:"chapter"`
	Skills           map[string]SkillLevel `json:"skills"`
	Responsibilities []string              `json:"responsibilities"`
	Ambitions        []string              `json:"ambitions"`
	Dedication       string                `json:"dedication"`
}

// SkillLevel returns the employee's level for a skill, novice when absent.
func (e Employee) SkillLevel(skillID string) SkillLevel {
	if lvl, ok := e.Skills[skillID]; ok {
		return lvl
	}
	return LevelNovice
}

// HasSkillAtLeast reports whether the employee holds the skill at min or above.
func (e Employee) HasSkillAtLeast(skillID string, min SkillLevel) bool {
	return e.SkillLevel(skillID).Numeric() >= min.Numeric()
}

// DedicationHours parses the current weekly range with the same fallback
// contract as Role.DedicationHours.
func (e Employee) DedicationHours() HourRange {
	return parseHoursOrDefault(e.Dedication)
}
