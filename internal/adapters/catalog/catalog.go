// Package catalog loads the organization catalog and the demand outlook from
// JSON files on disk.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quether/talentgap/internal/domain/analyzer"
	"github.com/quether/talentgap/internal/domain/model"
)

// Catalog is the full organization input: the skill taxonomy, the target
// roles, the chapter structure and the employees.
type Catalog struct {
	Skills    []model.Skill    `json:"skills"`
	Roles     []model.Role     `json:"roles"`
	Chapters  []model.Chapter  `json:"chapters"`
	Employees []model.Employee `json:"employees"`
}

// LoadOrg reads and validates an organization catalog from a JSON file.
func LoadOrg(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog %s: %w", path, err)
	}
	return &c, nil
}

// LoadOutlook reads the demand outlook from a JSON file. The outlook is
// optional input; callers decide what its absence means.
func LoadOutlook(path string) ([]analyzer.DemandRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read outlook %s: %w", path, err)
	}
	var outlook []analyzer.DemandRecord
	if err := json.Unmarshal(data, &outlook); err != nil {
		return nil, fmt.Errorf("parse outlook %s: %w", path, err)
	}
	return outlook, nil
}

// Validate checks id uniqueness and referential integrity of the catalog.
func (c *Catalog) Validate() error {
	skills := make(map[string]struct{}, len(c.Skills))
	for _, s := range c.Skills {
		if s.ID == "" {
			return fmt.Errorf("skill %q: %w", s.Name, ErrMissingID)
		}
		if _, ok := skills[s.ID]; ok {
			return fmt.Errorf("skill %s: %w", s.ID, ErrDuplicateID)
		}
		skills[s.ID] = struct{}{}
	}

	roles := make(map[string]struct{}, len(c.Roles))
	for _, r := range c.Roles {
		if r.ID == "" {
			return fmt.Errorf("role %q: %w", r.Title, ErrMissingID)
		}
		if _, ok := roles[r.ID]; ok {
			return fmt.Errorf("role %s: %w", r.ID, ErrDuplicateID)
		}
		roles[r.ID] = struct{}{}
		for _, skillID := range r.RequiredSkills {
			if _, ok := skills[skillID]; !ok {
				return fmt.Errorf("role %s requires skill %s: %w", r.ID, skillID, ErrUnknownSkill)
			}
		}
	}

	employees := make(map[string]struct{}, len(c.Employees))
	for _, e := range c.Employees {
		if e.ID == "" {
			return fmt.Errorf("employee %q: %w", e.Name, ErrMissingID)
		}
		if _, ok := employees[e.ID]; ok {
			return fmt.Errorf("employee %s: %w", e.ID, ErrDuplicateID)
		}
		employees[e.ID] = struct{}{}
	}
	return nil
}

// SkillIndex returns skills keyed by id.
func (c *Catalog) SkillIndex() map[string]model.Skill {
	idx := make(map[string]model.Skill, len(c.Skills))
	for _, s := range c.Skills {
		idx[s.ID] = s
	}
	return idx
}

// Role returns the role with the given id.
func (c *Catalog) Role(id string) (model.Role, bool) {
	for _, r := range c.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return model.Role{}, false
}

// Employee returns the employee with the given id.
func (c *Catalog) Employee(id string) (model.Employee, bool) {
	for _, e := range c.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return model.Employee{}, false
}
