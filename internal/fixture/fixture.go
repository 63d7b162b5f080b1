// Package fixture generates a deterministic synthetic organization for demos
// and integration tests. The same seed always yields the same catalog.
package fixture

import (
	"fmt"
	"math/rand"

	"github.com/quether/talentgap/internal/adapters/catalog"
	"github.com/quether/talentgap/internal/domain/analyzer"
	"github.com/quether/talentgap/internal/domain/model"
)

// DefaultEmployeeCount is the employee count used when none is given.
const DefaultEmployeeCount = 24

var chapters = []model.Chapter{
	{Name: "Strategy", Description: "Planning, analysis and OKR governance"},
	{Name: "Creative", Description: "Copy, design and brand identity"},
	{Name: "Performance", Description: "Growth, acquisition and campaign analytics"},
	{Name: "Client Services", Description: "Projects, stakeholders and account leadership"},
}

var skills = []model.Skill{
	{ID: "skill-okr", Name: "OKR Definition", Category: "strategy", Weight: 5, Tools: []string{"Perdoo"}},
	{ID: "skill-analysis", Name: "Data Analysis", Category: "strategy", Weight: 4, Tools: []string{"Looker", "Sheets"}},
	{ID: "skill-crm", Name: "CRM Automation", Category: "strategy", Weight: 3, Tools: []string{"HubSpot"}},
	{ID: "skill-copy", Name: "Copywriting", Category: "creative", Weight: 4, Tools: []string{"Docs"}},
	{ID: "skill-design", Name: "Visual Design", Category: "creative", Weight: 4, Tools: []string{"Figma"}},
	{ID: "skill-brand", Name: "Brand Identity", Category: "creative", Weight: 3, Tools: []string{"Figma"}},
	{ID: "skill-social", Name: "Social Media", Category: "performance", Weight: 3, Tools: []string{"Metricool"}},
	{ID: "skill-growth", Name: "Growth Marketing", Category: "performance", Weight: 5, Tools: []string{"Ads"}},
	{ID: "skill-campaign", Name: "Campaign Management", Category: "performance", Weight: 4, Tools: []string{"Ads", "Meta"}},
	{ID: "skill-project", Name: "Project Management", Category: "client", Weight: 4, Tools: []string{"Asana"}},
	{ID: "skill-stakeholder", Name: "Stakeholder Management", Category: "client", Weight: 5, Tools: nil},
	{ID: "skill-storytelling", Name: "Storytelling", Category: "client", Weight: 2, Tools: nil},
}

var roles = []model.Role{
	{
		ID: "role-strategy-lead", Title: "Strategy Lead", Seniority: "senior", Chapter: "Strategy",
		RequiredSkills:   []string{"skill-okr", "skill-analysis", "skill-stakeholder"},
		Responsibilities: []string{"define okr strategy for clients", "lead data analysis workshops", "direct strategy discovery sessions"},
		Dedication:       "30-40h",
	},
	{
		ID: "role-strategy-analyst", Title: "Strategy Analyst", Seniority: "mid", Chapter: "Strategy",
		RequiredSkills:   []string{"skill-analysis", "skill-crm"},
		Responsibilities: []string{"support data analysis for campaigns", "configure crm automation flows"},
		Dedication:       "35-40h",
	},
	{
		ID: "role-creative-director", Title: "Creative Director", Seniority: "senior", Chapter: "Creative",
		RequiredSkills:   []string{"skill-design", "skill-brand", "skill-copy"},
		Responsibilities: []string{"direct creative vision and brand identity", "lead visual design reviews"},
		Dedication:       "30-40h",
	},
	{
		ID: "role-copywriter", Title: "Copywriter", Seniority: "mid", Chapter: "Creative",
		RequiredSkills:   []string{"skill-copy", "skill-storytelling"},
		Responsibilities: []string{"create content and campaign copy", "develop narrative for social media"},
		Dedication:       "20-30h",
	},
	{
		ID: "role-growth-manager", Title: "Growth Manager", Seniority: "senior", Chapter: "Performance",
		RequiredSkills:   []string{"skill-growth", "skill-campaign", "skill-analysis"},
		Responsibilities: []string{"lead growth and acquisition strategy", "manage performance campaign budgets"},
		Dedication:       "35-40h",
	},
	{
		ID: "role-social-manager", Title: "Social Media Manager", Seniority: "mid", Chapter: "Performance",
		RequiredSkills:   []string{"skill-social", "skill-campaign", "skill-copy"},
		Responsibilities: []string{"manage social media calendars", "run influencer and creators outreach"},
		Dedication:       "25-35h",
	},
	{
		ID: "role-account-director", Title: "Account Director", Seniority: "senior", Chapter: "Client Services",
		RequiredSkills:   []string{"skill-stakeholder", "skill-project", "skill-storytelling"},
		Responsibilities: []string{"direct strategy for key clients", "lead stakeholder management and governance"},
		Dedication:       "30-40h",
	},
	{
		ID: "role-project-manager", Title: "Project Manager", Seniority: "mid", Chapter: "Client Services",
		RequiredSkills:   []string{"skill-project", "skill-stakeholder"},
		Responsibilities: []string{"manage project roadmap and delivery", "support client workshops"},
		Dedication:       "35-40h",
	},
}

var levels = []model.SkillLevel{
	model.LevelNovice,
	model.LevelIntermediate,
	model.LevelAdvanced,
	model.LevelExpert,
}

var firstNames = []string{"Alex", "Bianca", "Carlos", "Dana", "Emre", "Flora", "Gael", "Hana", "Ivo", "Julia", "Kofi", "Lena"}
var lastNames = []string{"Alvarez", "Berg", "Costa", "Duarte", "Egede", "Fontana", "Garcia", "Haddad", "Ito", "Juhasz", "Khan", "Lindt"}

var ambitionTemplates = []string{
	"grow into a %s position within the %s chapter",
	"lead strategic analysis and workshops as a %s in %s",
	"move towards %s work with more creative and campaign ownership in %s",
	"take on stakeholder management and governance as a %s in %s",
}

var dedications = []string{"20-30h", "25-35h", "30-40h", "35-40h", "full time"}

// Generate builds a deterministic synthetic catalog with the given employee
// count. Employee skills, ambitions and dedication derive from the seed.
func Generate(seed int64, employeeCount int) *catalog.Catalog {
	if employeeCount <= 0 {
		employeeCount = DefaultEmployeeCount
	}
	rng := rand.New(rand.NewSource(seed))

	employees := make([]model.Employee, 0, employeeCount)
	for i := 0; i < employeeCount; i++ {
		chapter := chapters[i%len(chapters)]
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]

		empSkills := make(map[string]model.SkillLevel)
		for _, s := range skills {
			// Employees know roughly half the taxonomy.
			if rng.Intn(2) == 0 {
				continue
			}
			empSkills[s.ID] = levels[rng.Intn(len(levels))]
		}

		targetRole := roles[rng.Intn(len(roles))]
		ambition := fmt.Sprintf(
			ambitionTemplates[rng.Intn(len(ambitionTemplates))],
			targetRole.Title, targetRole.Chapter,
		)

		responsibilities := make([]string, 0, 2)
		for _, role := range roles {
			if role.Chapter == chapter.Name && len(role.Responsibilities) > 0 {
				responsibilities = append(responsibilities, role.Responsibilities[rng.Intn(len(role.Responsibilities))])
			}
		}

		employees = append(employees, model.Employee{
			ID:               fmt.Sprintf("emp-%03d", i+1),
			Name:             name,
			Chapter:          chapter.Name,
			Skills:           empSkills,
			Responsibilities: responsibilities,
			Ambitions:        []string{ambition},
			Dedication:       dedications[rng.Intn(len(dedications))],
		})
	}

	return &catalog.Catalog{
		Skills:    skills,
		Roles:     roles,
		Chapters:  chapters,
		Employees: employees,
	}
}

// Outlook builds a small demand outlook matching the synthetic catalog.
func Outlook() []analyzer.DemandRecord {
	return []analyzer.DemandRecord{
		{SkillID: "skill-growth", SkillName: "Growth Marketing", ProjectedDemand: 8, CurrentCapacity: 2, Critical: true, Description: "Acquisition demand doubling next year"},
		{SkillID: "skill-okr", SkillName: "OKR Definition", ProjectedDemand: 5, CurrentCapacity: 3, Critical: true, Description: "Every new client engagement starts with OKRs"},
		{SkillID: "skill-design", SkillName: "Visual Design", ProjectedDemand: 4, CurrentCapacity: 4, Critical: false},
	}
}
