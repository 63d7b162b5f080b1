// Package ranking turns a populated compatibility matrix into candidate
// rankings, career paths, assignment suggestions, succession plans and
// summary statistics. The engine only ever reads the matrix.
package ranking

import (
	"sort"

	"github.com/quether/talentgap/internal/domain/model"
)

// Defaults for the engine's tunables.
const (
	DefaultMinViableScore  = 0.25
	DefaultTopCandidates   = 3
	DefaultMinReady        = 1
	DefaultMinReadyOptions = 2

	// careerPathLimit caps the options kept per employee.
	careerPathLimit = 5
	// successionLimit caps the candidates kept per leadership role.
	successionLimit = 3
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMinViableScore sets the pruning floor for rankings.
func WithMinViableScore(score float64) Option {
	return func(e *Engine) {
		if score >= 0 {
			e.minViableScore = score
		}
	}
}

// Engine ranks candidates and career options over a read-only matrix.
type Engine struct {
	minViableScore float64
}

// New creates a ranking engine.
func New(opts ...Option) *Engine {
	e := &Engine{minViableScore: DefaultMinViableScore}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RoleRankings holds per-role candidate lists in catalog role order.
type RoleRankings struct {
	roleIDs    []string
	candidates map[string][]model.GapResult
}

// RoleIDs returns the covered roles in catalog order.
func (r *RoleRankings) RoleIDs() []string {
	out := make([]string, len(r.roleIDs))
	copy(out, r.roleIDs)
	return out
}

// Candidates returns the ranked viable candidates for one role.
func (r *RoleRankings) Candidates(roleID string) []model.GapResult {
	return r.candidates[roleID]
}

// CareerPaths holds per-employee top role options in catalog employee order.
type CareerPaths struct {
	employeeIDs []string
	paths       map[string][]model.GapResult
}

// EmployeeIDs returns the covered employees in catalog order.
func (c *CareerPaths) EmployeeIDs() []string {
	out := make([]string, len(c.employeeIDs))
	copy(out, c.employeeIDs)
	return out
}

// Paths returns the ranked viable options for one employee.
func (c *CareerPaths) Paths(employeeID string) []model.GapResult {
	return c.paths[employeeID]
}

// RoleRankings collects, prunes and ranks every candidate per role. Results
// below the minimum viable score are dropped; ties keep the matrix's employee
// insertion order.
func (e *Engine) RoleRankings(matrix *model.CompatibilityMatrix, roles []model.Role) (*RoleRankings, error) {
	if matrix == nil {
		return nil, ErrNilMatrix
	}
	rr := &RoleRankings{candidates: make(map[string][]model.GapResult, len(roles))}
	for _, role := range roles {
		ranked := matrix.RoleCandidates(role.ID)
		viable := make([]model.GapResult, 0, len(ranked))
		for _, r := range ranked {
			if r.OverallScore >= e.minViableScore {
				viable = append(viable, r)
			}
		}
		rr.roleIDs = append(rr.roleIDs, role.ID)
		rr.candidates[role.ID] = viable
	}
	return rr, nil
}

// CareerPaths ranks each employee's viable role options, keeping the top 5.
func (e *Engine) CareerPaths(matrix *model.CompatibilityMatrix, employees []model.Employee) (*CareerPaths, error) {
	if matrix == nil {
		return nil, ErrNilMatrix
	}
	cp := &CareerPaths{paths: make(map[string][]model.GapResult, len(employees))}
	for _, emp := range employees {
		results := matrix.EmployeeResults(emp.ID)
		viable := make([]model.GapResult, 0, len(results))
		for _, r := range results {
			if r.OverallScore >= e.minViableScore {
				viable = append(viable, r)
			}
		}
		sort.SliceStable(viable, func(i, j int) bool {
			return viable[i].OverallScore > viable[j].OverallScore
		})
		if len(viable) > careerPathLimit {
			viable = viable[:careerPathLimit]
		}
		cp.employeeIDs = append(cp.employeeIDs, emp.ID)
		cp.paths[emp.ID] = viable
	}
	return cp, nil
}

// AssignmentConflicts reports employees who appear in the top-N candidate
// lists of more than one role, mapped to the competing role ids (sorted for
// determinism).
func (e *Engine) AssignmentConflicts(rankings *RoleRankings, topN int) map[string][]string {
	if topN <= 0 {
		topN = DefaultTopCandidates
	}
	appearances := make(map[string][]string)
	for _, roleID := range rankings.roleIDs {
		candidates := rankings.candidates[roleID]
		if len(candidates) > topN {
			candidates = candidates[:topN]
		}
		for _, r := range candidates {
			appearances[r.EmployeeID] = append(appearances[r.EmployeeID], roleID)
		}
	}

	conflicts := make(map[string][]string)
	for empID, roleIDs := range appearances {
		if len(roleIDs) > 1 {
			sort.Strings(roleIDs)
			conflicts[empID] = roleIDs
		}
	}
	return conflicts
}

// OptimalDistribution suggests a one-to-one employee/role assignment with a
// single greedy pass: priority roles first in the given order, then the rest
// in catalog order; each role takes its best-ranked unassigned ready-or-better
// candidate. This is a deliberate first-fit heuristic, not a global optimum —
// a role can stay unfilled when its only good candidates were claimed by
// earlier roles.
func (e *Engine) OptimalDistribution(rankings *RoleRankings, priorityRoles []string) map[string]string {
	assignments := make(map[string]string)
	assigned := make(map[string]struct{})

	ordered := make([]string, 0, len(rankings.roleIDs))
	inPriority := make(map[string]struct{}, len(priorityRoles))
	for _, roleID := range priorityRoles {
		inPriority[roleID] = struct{}{}
		ordered = append(ordered, roleID)
	}
	for _, roleID := range rankings.roleIDs {
		if _, ok := inPriority[roleID]; !ok {
			ordered = append(ordered, roleID)
		}
	}

	for _, roleID := range ordered {
		for _, r := range rankings.candidates[roleID] {
			if _, taken := assigned[r.EmployeeID]; taken {
				continue
			}
			if !r.IsReady() {
				continue
			}
			assignments[r.EmployeeID] = roleID
			assigned[r.EmployeeID] = struct{}{}
			break
		}
	}
	return assignments
}

// OrphanRoles lists roles short of ready-or-better candidates, in catalog
// order.
func (e *Engine) OrphanRoles(rankings *RoleRankings, minReady int) []string {
	if minReady <= 0 {
		minReady = DefaultMinReady
	}
	var orphans []string
	for _, roleID := range rankings.roleIDs {
		ready := 0
		for _, r := range rankings.candidates[roleID] {
			if r.IsReady() {
				ready++
			}
		}
		if ready < minReady {
			orphans = append(orphans, roleID)
		}
	}
	return orphans
}

// ReadinessDistribution tallies every matrix result by band.
func (e *Engine) ReadinessDistribution(matrix *model.CompatibilityMatrix) (map[model.GapBand]int, error) {
	if matrix == nil {
		return nil, ErrNilMatrix
	}
	dist := make(map[model.GapBand]int)
	matrix.All(func(r model.GapResult) {
		dist[r.Band]++
	})
	return dist, nil
}

// HighPotentialEmployees lists employees with several ready-or-better career
// options, in catalog order.
func (e *Engine) HighPotentialEmployees(paths *CareerPaths, minReadyOptions int) []string {
	if minReadyOptions <= 0 {
		minReadyOptions = DefaultMinReadyOptions
	}
	var out []string
	for _, empID := range paths.employeeIDs {
		ready := 0
		for _, r := range paths.paths[empID] {
			if r.IsReady() {
				ready++
			}
		}
		if ready >= minReadyOptions {
			out = append(out, empID)
		}
	}
	return out
}

// SuccessionPlan keeps the top 3 NEAR-or-better candidates for each
// leadership role. Roles absent from the rankings get an empty plan.
func (e *Engine) SuccessionPlan(rankings *RoleRankings, leadershipRoles []string) map[string][]string {
	plan := make(map[string][]string, len(leadershipRoles))
	for _, roleID := range leadershipRoles {
		candidates, ok := rankings.candidates[roleID]
		if !ok {
			plan[roleID] = []string{}
			continue
		}
		successors := make([]string, 0, successionLimit)
		for _, r := range candidates {
			if r.Band == model.BandNotViable || r.Band == model.BandFar {
				continue
			}
			successors = append(successors, r.EmployeeID)
			if len(successors) == successionLimit {
				break
			}
		}
		plan[roleID] = successors
	}
	return plan
}

// Timeline estimates months until a candidate is workable and fully ready.
// Negative values mean the transition is not applicable.
type Timeline struct {
	ReadyNowMonths   int `json:"ready_now_months"`
	FullyReadyMonths int `json:"fully_ready_months"`
}

// TransitionTimeline maps a result's band onto a fixed month estimate.
func (e *Engine) TransitionTimeline(result model.GapResult) Timeline {
	switch result.Band {
	case model.BandReady:
		return Timeline{ReadyNowMonths: 0, FullyReadyMonths: 0}
	case model.BandReadyWithSupport:
		return Timeline{ReadyNowMonths: 0, FullyReadyMonths: 1}
	case model.BandNear:
		return Timeline{ReadyNowMonths: 3, FullyReadyMonths: 6}
	case model.BandFar:
		return Timeline{ReadyNowMonths: 9, FullyReadyMonths: 12}
	default:
		return Timeline{ReadyNowMonths: -1, FullyReadyMonths: -1}
	}
}

// Summary aggregates the rankings for executive reporting.
type Summary struct {
	TotalPositions        int                   `json:"total_positions"`
	PositionsWithReady    int                   `json:"positions_with_ready_candidates"`
	CoveragePercentage    float64               `json:"coverage_percentage"`
	TotalReadyMatches     int                   `json:"total_ready_matches"`
	OrphanRoleCount       int                   `json:"orphan_roles_count"`
	OrphanRoles           []string              `json:"orphan_roles"`
	ReadinessDistribution map[model.GapBand]int `json:"readiness_distribution"`
	AvgCandidatesPerRole  float64               `json:"avg_candidates_per_role"`
}

// RankingSummary compiles the aggregate view of the rankings.
func (e *Engine) RankingSummary(rankings *RoleRankings, employees []model.Employee, roles []model.Role) Summary {
	s := Summary{
		TotalPositions:        len(roles),
		ReadinessDistribution: make(map[model.GapBand]int),
	}

	totalCandidates := 0
	for _, roleID := range rankings.roleIDs {
		ready := 0
		for _, r := range rankings.candidates[roleID] {
			s.ReadinessDistribution[r.Band]++
			totalCandidates++
			if r.IsReady() {
				ready++
			}
		}
		if ready > 0 {
			s.PositionsWithReady++
		}
		s.TotalReadyMatches += ready
	}

	s.OrphanRoles = e.OrphanRoles(rankings, DefaultMinReady)
	s.OrphanRoleCount = len(s.OrphanRoles)
	if s.TotalPositions > 0 {
		s.CoveragePercentage = float64(s.PositionsWithReady) / float64(s.TotalPositions) * 100
		s.AvgCandidatesPerRole = float64(totalCandidates) / float64(s.TotalPositions)
	}
	return s
}
