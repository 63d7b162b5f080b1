package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quether/talentgap/internal/domain/analyzer"
	"github.com/quether/talentgap/internal/domain/model"
	"github.com/quether/talentgap/internal/domain/ranking"
)

// RoleRanking is one role's ranked candidate list for the report.
type RoleRanking struct {
	RoleID     string            `json:"role_id"`
	Title      string            `json:"title"`
	Candidates []model.GapResult `json:"candidates"`
}

// CareerPath is one employee's ranked role options for the report.
type CareerPath struct {
	EmployeeID string            `json:"employee_id"`
	Name       string            `json:"name"`
	Options    []model.GapResult `json:"options"`
}

// Report is the full outcome of one analysis run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Summary         ranking.Summary     `json:"summary"`
	Rankings        []RoleRanking       `json:"rankings"`
	CareerPaths     []CareerPath        `json:"career_paths"`
	Conflicts       map[string][]string `json:"conflicts"`
	Assignments     map[string]string   `json:"assignments"`
	OrphanRoles     []string            `json:"orphan_roles"`
	HighPotentials  []string            `json:"high_potentials"`
	SuccessionPlans map[string][]string `json:"succession_plans"`

	SkillGaps       []analyzer.SkillGap      `json:"skill_gaps"`
	ChapterGaps     []analyzer.ChapterGap    `json:"chapter_gaps"`
	Bottlenecks     []analyzer.Bottleneck    `json:"bottlenecks"`
	TrainingROIs    []analyzer.TrainingROI   `json:"training_rois"`
	Recommendations analyzer.Recommendations `json:"recommendations"`

	ExecutiveSummary []string `json:"executive_summary"`
}

// buildReport derives every ranking and aggregate from a populated matrix.
func (s *Service) buildReport(ctx context.Context, matrix *model.CompatibilityMatrix) (*Report, error) {
	rankings, err := s.engine.RoleRankings(matrix, s.catalog.Roles)
	if err != nil {
		return nil, err
	}
	careers, err := s.engine.CareerPaths(matrix, s.catalog.Employees)
	if err != nil {
		return nil, err
	}
	skillGaps, err := s.analyzer.SkillGaps(matrix, s.catalog.Skills, s.catalog.Roles)
	if err != nil {
		return nil, err
	}
	chapterGaps, err := s.analyzer.ChapterGaps(matrix, s.catalog.Employees, s.catalog.Roles, s.catalog.Chapters)
	if err != nil {
		return nil, err
	}

	bottlenecks := s.analyzer.BottleneckSkills(skillGaps, s.catalog.Roles)
	rois := s.analyzer.TrainingROIs(skillGaps)
	recommendations := s.analyzer.StrategicRecommendations(bottlenecks, skillGaps, chapterGaps)

	report := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),

		Summary:         s.engine.RankingSummary(rankings, s.catalog.Employees, s.catalog.Roles),
		Conflicts:       s.engine.AssignmentConflicts(rankings, s.topCandidates),
		Assignments:     s.engine.OptimalDistribution(rankings, s.priorityRoles),
		OrphanRoles:     s.engine.OrphanRoles(rankings, s.minReadyCandidates),
		HighPotentials:  s.engine.HighPotentialEmployees(careers, s.minReadyOptions),
		SuccessionPlans: s.engine.SuccessionPlan(rankings, s.leadershipRoles),

		SkillGaps:       skillGaps,
		ChapterGaps:     chapterGaps,
		Bottlenecks:     bottlenecks,
		TrainingROIs:    rois,
		Recommendations: recommendations,
	}

	for _, role := range s.catalog.Roles {
		report.Rankings = append(report.Rankings, RoleRanking{
			RoleID:     role.ID,
			Title:      role.Title,
			Candidates: rankings.Candidates(role.ID),
		})
	}
	for _, emp := range s.catalog.Employees {
		report.CareerPaths = append(report.CareerPaths, CareerPath{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Options:    careers.Paths(emp.ID),
		})
	}

	report.ExecutiveSummary = executiveSummary(matrix, report)
	return report, nil
}

// executiveSummary compiles the report's headline numbers into short lines.
func executiveSummary(matrix *model.CompatibilityMatrix, r *Report) []string {
	lines := []string{
		fmt.Sprintf("%d transitions scored across %d positions", matrix.Len(), r.Summary.TotalPositions),
		fmt.Sprintf("%.0f%% of positions have at least one ready candidate (%d ready matches)",
			r.Summary.CoveragePercentage, r.Summary.TotalReadyMatches),
	}
	if len(r.OrphanRoles) > 0 {
		lines = append(lines, fmt.Sprintf("%d positions lack ready candidates", len(r.OrphanRoles)))
	}
	if len(r.HighPotentials) > 0 {
		lines = append(lines, fmt.Sprintf("%d employees have multiple ready career options", len(r.HighPotentials)))
	}
	if len(r.Bottlenecks) > 0 {
		top := r.Bottlenecks[0]
		lines = append(lines, fmt.Sprintf("top bottleneck: %s at %.0f%% gap", top.SkillName, top.GapPercentage))
	}
	critical := 0
	for _, ch := range r.ChapterGaps {
		if ch.Health == analyzer.HealthCritical {
			critical++
		}
	}
	if critical > 0 {
		lines = append(lines, fmt.Sprintf("%d chapters are in critical readiness state", critical))
	}
	return lines
}
