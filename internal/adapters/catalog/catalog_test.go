package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validCatalogJSON = `{
  "skills": [
    {"id": "skill-okr", "name": "OKR Definition", "category": "strategy", "weight": 5},
    {"id": "skill-copy", "name": "Copywriting", "category": "creative", "weight": 3}
  ],
  "roles": [
    {
      "id": "role-strategy-lead",
      "title": "Strategy Lead",
      "chapter": "Strategy",
      "seniority": "senior",
      "required_skills": ["skill-okr"],
      "responsibilities": ["define okr strategy"],
      "dedication": "30-40h"
    }
  ],
  "chapters": [
    {"name": "Strategy", "description": "strategy chapter"}
  ],
  "employees": [
    {
      "id": "emp-001",
      "name": "Alex",
      "chapter": "Strategy",
      "skills": {"skill-okr": "expert"},
      "responsibilities": ["run okr reviews"],
      "ambitions": ["lead the strategy chapter"],
      "dedication": "30-40h"
    }
  ]
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadOrg(t *testing.T) {
	path := writeTempFile(t, "org.json", validCatalogJSON)

	c, err := LoadOrg(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Skills) != 2 || len(c.Roles) != 1 || len(c.Employees) != 1 {
		t.Errorf("unexpected catalog shape: %d skills, %d roles, %d employees",
			len(c.Skills), len(c.Roles), len(c.Employees))
	}

	idx := c.SkillIndex()
	if idx["skill-okr"].Weight != 5 {
		t.Errorf("expected weight 5 for skill-okr, got %v", idx["skill-okr"].Weight)
	}

	if _, ok := c.Role("role-strategy-lead"); !ok {
		t.Error("expected role lookup to succeed")
	}
	if _, ok := c.Role("role-ghost"); ok {
		t.Error("expected unknown role lookup to fail")
	}
	if _, ok := c.Employee("emp-001"); !ok {
		t.Error("expected employee lookup to succeed")
	}
}

func TestLoadOrg_FileErrors(t *testing.T) {
	if _, err := LoadOrg(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeTempFile(t, "broken.json", "{not json")
	if _, err := LoadOrg(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		json    string
		wantErr error
	}{
		{
			name:    "missing skill id",
			json:    `{"skills": [{"name": "Nameless"}]}`,
			wantErr: ErrMissingID,
		},
		{
			name:    "duplicate skill id",
			json:    `{"skills": [{"id": "s1", "name": "A"}, {"id": "s1", "name": "B"}]}`,
			wantErr: ErrDuplicateID,
		},
		{
			name:    "role references unknown skill",
			json:    `{"roles": [{"id": "r1", "title": "R", "required_skills": ["skill-ghost"]}]}`,
			wantErr: ErrUnknownSkill,
		},
		{
			name:    "duplicate employee id",
			json:    `{"employees": [{"id": "e1", "name": "A"}, {"id": "e1", "name": "B"}]}`,
			wantErr: ErrDuplicateID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, "org.json", tc.json)
			_, err := LoadOrg(path)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadOutlook(t *testing.T) {
	path := writeTempFile(t, "outlook.json", `[
  {
    "skill_id": "skill-okr",
    "skill_name": "OKR Definition",
    "projected_demand": 8,
    "current_capacity": 2,
    "critical": true,
    "description": "quarterly planning rollout"
  }
]`)

	outlook, err := LoadOutlook(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(outlook) != 1 {
		t.Fatalf("expected 1 record, got %d", len(outlook))
	}
	rec := outlook[0]
	if rec.SkillID != "skill-okr" || rec.ProjectedDemand != 8 || !rec.Critical {
		t.Errorf("unexpected record: %+v", rec)
	}

	if _, err := LoadOutlook(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing outlook file")
	}
}
