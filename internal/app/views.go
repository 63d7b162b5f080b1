package service

import (
	"sort"

	"github.com/quether/talentgap/internal/domain/model"
	"github.com/quether/talentgap/internal/domain/ranking"
)

// Development priority labels for an employee's role options.
const (
	DevelopmentHigh   = "HIGH"
	DevelopmentMedium = "MEDIUM"
	DevelopmentLow    = "LOW"

	developmentHighScore   = 0.8
	developmentMediumScore = 0.6
)

// EmployeeView is one employee's slice of the last run.
type EmployeeView struct {
	Employee    model.Employee              `json:"employee"`
	Options     []model.GapResult           `json:"options"`
	Timeline    map[string]ranking.Timeline `json:"timeline"`
	Development map[string]string           `json:"development"`
}

// RoleView is one role's slice of the last run.
type RoleView struct {
	Role         model.Role        `json:"role"`
	Candidates   []model.GapResult `json:"candidates"`
	Ready        int               `json:"ready"`
	ExternalHire bool              `json:"external_hire_recommended"`
}

// developmentPriority labels how promising an option is to invest in.
func developmentPriority(score float64) string {
	switch {
	case score >= developmentHighScore:
		return DevelopmentHigh
	case score >= developmentMediumScore:
		return DevelopmentMedium
	default:
		return DevelopmentLow
	}
}

// EmployeeAnalysis returns the ranked options and transition timelines for
// one employee from the last run.
func (s *Service) EmployeeAnalysis(employeeID string) (*EmployeeView, error) {
	s.mu.RLock()
	matrix := s.matrix
	s.mu.RUnlock()
	if matrix == nil {
		return nil, ErrNotAnalyzed
	}

	emp, ok := s.catalog.Employee(employeeID)
	if !ok {
		return nil, ErrUnknownEmployee
	}

	view := &EmployeeView{
		Employee:    emp,
		Timeline:    make(map[string]ranking.Timeline),
		Development: make(map[string]string),
	}
	for _, r := range matrix.EmployeeResults(employeeID) {
		view.Options = append(view.Options, r)
		view.Timeline[r.RoleID] = s.engine.TransitionTimeline(r)
		view.Development[r.RoleID] = developmentPriority(r.OverallScore)
	}
	sort.SliceStable(view.Options, func(i, j int) bool {
		return view.Options[i].OverallScore > view.Options[j].OverallScore
	})
	return view, nil
}

// RoleAnalysis returns the ranked candidates for one role from the last run.
func (s *Service) RoleAnalysis(roleID string) (*RoleView, error) {
	s.mu.RLock()
	matrix := s.matrix
	s.mu.RUnlock()
	if matrix == nil {
		return nil, ErrNotAnalyzed
	}

	role, ok := s.catalog.Role(roleID)
	if !ok {
		return nil, ErrUnknownRole
	}

	view := &RoleView{Role: role}
	for _, r := range matrix.RoleCandidates(roleID) {
		view.Candidates = append(view.Candidates, r)
		if r.IsReady() {
			view.Ready++
		}
	}
	view.ExternalHire = view.Ready == 0
	return view, nil
}
