package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// CompatibilityMatrix is the sparse employee x role map of gap results.
//
// It is built once through a MatrixBuilder and read-only afterwards: every
// accessor returns copies, so the ranking and analysis layers cannot mutate
// each other's inputs. Iteration order is the builder's insertion order, which
// makes ranking tie-breaks deterministic.
type CompatibilityMatrix struct {
	results       map[string]map[string]GapResult
	employeeOrder []string
	roleOrder     map[string][]string
}

// Result returns the gap result for a pair, if present.
func (m *CompatibilityMatrix) Result(employeeID, roleID string) (GapResult, bool) {
	r, ok := m.results[employeeID][roleID]
	return r, ok
}

// EmployeeIDs returns the employees present, in insertion order.
func (m *CompatibilityMatrix) EmployeeIDs() []string {
	out := make([]string, len(m.employeeOrder))
	copy(out, m.employeeOrder)
	return out
}

// EmployeeResults returns every result for one employee, in insertion order.
func (m *CompatibilityMatrix) EmployeeResults(employeeID string) []GapResult {
	roleIDs := m.roleOrder[employeeID]
	out := make([]GapResult, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		out = append(out, m.results[employeeID][roleID])
	}
	return out
}

// RoleCandidates returns every result targeting a role, sorted by score
// descending. The sort is stable, so equal scores keep employee insertion
// order.
func (m *CompatibilityMatrix) RoleCandidates(roleID string) []GapResult {
	var out []GapResult
	for _, empID := range m.employeeOrder {
		if r, ok := m.results[empID][roleID]; ok {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OverallScore > out[j].OverallScore
	})
	return out
}

// ReadyCandidates returns every ready-or-better result, sorted by score
// descending.
func (m *CompatibilityMatrix) ReadyCandidates() []GapResult {
	var out []GapResult
	for _, empID := range m.employeeOrder {
		for _, roleID := range m.roleOrder[empID] {
			if r := m.results[empID][roleID]; r.IsReady() {
				out = append(out, r)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OverallScore > out[j].OverallScore
	})
	return out
}

// Len returns the number of scored pairs.
func (m *CompatibilityMatrix) Len() int {
	n := 0
	for _, roles := range m.results {
		n += len(roles)
	}
	return n
}

// All visits every result, employee then role insertion order.
func (m *CompatibilityMatrix) All(visit func(r GapResult)) {
	for _, empID := range m.employeeOrder {
		for _, roleID := range m.roleOrder[empID] {
			visit(m.results[empID][roleID])
		}
	}
}

// MatrixBuilder accumulates gap results into a CompatibilityMatrix. Not safe
// for concurrent use; concurrent population goes through the sharded store.
type MatrixBuilder struct {
	m *CompatibilityMatrix
}

// NewMatrixBuilder returns an empty builder.
func NewMatrixBuilder() *MatrixBuilder {
	return &MatrixBuilder{m: &CompatibilityMatrix{
		results:   make(map[string]map[string]GapResult),
		roleOrder: make(map[string][]string),
	}}
}

// Add records one result. The pair must carry both ids and must not have been
// added before.
func (b *MatrixBuilder) Add(r GapResult) error {
	if r.EmployeeID == "" || r.RoleID == "" {
		return ErrEmptyPairID
	}
	roles, ok := b.m.results[r.EmployeeID]
	if !ok {
		roles = make(map[string]GapResult)
		b.m.results[r.EmployeeID] = roles
		b.m.employeeOrder = append(b.m.employeeOrder, r.EmployeeID)
	}
	if _, exists := roles[r.RoleID]; exists {
		return fmt.Errorf("%w: %s/%s", ErrDuplicatePair, r.EmployeeID, r.RoleID)
	}
	roles[r.RoleID] = r
	b.m.roleOrder[r.EmployeeID] = append(b.m.roleOrder[r.EmployeeID], r.RoleID)
	return nil
}

// Build returns the finished matrix. The builder keeps no reference, so later
// Add calls cannot reach a matrix already handed out.
func (b *MatrixBuilder) Build() *CompatibilityMatrix {
	m := b.m
	b.m = &CompatibilityMatrix{
		results:   make(map[string]map[string]GapResult),
		roleOrder: make(map[string][]string),
	}
	return m
}

// matrixJSON is the serialized form; insertion order travels with the data so
// a reloaded matrix ranks identically without recomputation.
type matrixJSON struct {
	EmployeeOrder []string                        `json:"employee_order"`
	RoleOrder     map[string][]string             `json:"role_order"`
	Results       map[string]map[string]GapResult `json:"results"`
}

// MarshalJSON implements json.Marshaler.
func (m *CompatibilityMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON{
		EmployeeOrder: m.employeeOrder,
		RoleOrder:     m.roleOrder,
		Results:       m.results,
	})
}

// UnmarshalJSON implements json.Unmarshaler, rebuilding the matrix through the
// builder so the position/id invariant holds for loaded data too.
func (m *CompatibilityMatrix) UnmarshalJSON(data []byte) error {
	var raw matrixJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b := NewMatrixBuilder()
	for _, empID := range raw.EmployeeOrder {
		for _, roleID := range raw.RoleOrder[empID] {
			r, ok := raw.Results[empID][roleID]
			if !ok {
				return fmt.Errorf("matrix document references missing result %s/%s", empID, roleID)
			}
			if r.EmployeeID != empID || r.RoleID != roleID {
				return fmt.Errorf("matrix document result %s/%s carries mismatched ids %s/%s",
					empID, roleID, r.EmployeeID, r.RoleID)
			}
			if err := b.Add(r); err != nil {
				return err
			}
		}
	}
	*m = *b.Build()
	return nil
}
