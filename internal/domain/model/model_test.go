package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/quether/talentgap/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSkillLevel(t *testing.T) {
	Convey("Given the proficiency scale", t, func() {
		Convey("Then each level maps to its numeric value", func() {
			So(model.LevelNovice.Numeric(), ShouldEqual, 0.25)
			So(model.LevelIntermediate.Numeric(), ShouldEqual, 0.50)
			So(model.LevelAdvanced.Numeric(), ShouldEqual, 0.75)
			So(model.LevelExpert.Numeric(), ShouldEqual, 1.0)
		})

		Convey("Then an unknown level falls back to the novice value", func() {
			So(model.SkillLevel("wizard").Numeric(), ShouldEqual, 0.25)
		})

		Convey("When parsing level names", func() {
			lvl, err := model.ParseSkillLevel("advanced")
			So(err, ShouldBeNil)
			So(lvl, ShouldEqual, model.LevelAdvanced)

			_, err = model.ParseSkillLevel("grandmaster")
			So(err, ShouldNotBeNil)
		})

		Convey("When unmarshaling an invalid level from JSON", func() {
			var lvl model.SkillLevel
			err := json.Unmarshal([]byte(`"grandmaster"`), &lvl)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEmployeeSkillLookup(t *testing.T) {
	Convey("Given an employee with a partial skill map", t, func() {
		emp := model.Employee{
			ID: "emp-1",
			Skills: map[string]model.SkillLevel{
				"skill-a": model.LevelAdvanced,
			},
		}

		Convey("Then a listed skill returns its level", func() {
			So(emp.SkillLevel("skill-a"), ShouldEqual, model.LevelAdvanced)
		})

		Convey("Then an absent skill counts as novice, never as an error", func() {
			So(emp.SkillLevel("skill-b"), ShouldEqual, model.LevelNovice)
			So(emp.SkillLevel("skill-b").Numeric(), ShouldEqual, 0.25)
		})

		Convey("Then HasSkillAtLeast honors the scale ordering", func() {
			So(emp.HasSkillAtLeast("skill-a", model.LevelIntermediate), ShouldBeTrue)
			So(emp.HasSkillAtLeast("skill-a", model.LevelExpert), ShouldBeFalse)
			So(emp.HasSkillAtLeast("skill-b", model.LevelIntermediate), ShouldBeFalse)
		})
	})
}

func TestParseHourRange(t *testing.T) {
	Convey("Given dedication strings", t, func() {
		Convey("Then a well-formed range parses", func() {
			r, err := model.ParseHourRange("30-40h")
			So(err, ShouldBeNil)
			So(r.Min, ShouldEqual, 30)
			So(r.Max, ShouldEqual, 40)
			So(r.Width(), ShouldEqual, 10)
		})

		Convey("Then the range can be embedded in prose", func() {
			r, err := model.ParseHourRange("roughly 20-30h per week")
			So(err, ShouldBeNil)
			So(r.Min, ShouldEqual, 20)
			So(r.Max, ShouldEqual, 30)
		})

		Convey("Then free text fails to parse", func() {
			_, err := model.ParseHourRange("full time")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGapLines(t *testing.T) {
	Convey("Given skill gap lines", t, func() {
		line := model.SkillGapLine("Data Analysis", model.LevelIntermediate)

		Convey("Then the skill name round-trips through the line", func() {
			name, ok := model.SkillNameFromGapLine(line)
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "Data Analysis")
		})

		Convey("Then non-skill lines do not parse as skill gaps", func() {
			_, ok := model.SkillNameFromGapLine(model.ResponsibilityGapLine)
			So(ok, ShouldBeFalse)
			_, ok = model.SkillNameFromGapLine(model.DedicationGapLine)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestMatrixBuilder(t *testing.T) {
	Convey("Given a matrix builder", t, func() {
		b := model.NewMatrixBuilder()

		Convey("When adding results for several pairs", func() {
			So(b.Add(result("emp-1", "role-a", 0.8)), ShouldBeNil)
			So(b.Add(result("emp-1", "role-b", 0.3)), ShouldBeNil)
			So(b.Add(result("emp-2", "role-a", 0.9)), ShouldBeNil)
			m := b.Build()

			Convey("Then lookups find each stored pair", func() {
				r, ok := m.Result("emp-1", "role-b")
				So(ok, ShouldBeTrue)
				So(r.OverallScore, ShouldEqual, 0.3)
				So(m.Len(), ShouldEqual, 3)
			})

			Convey("Then missing pairs report absence without error", func() {
				_, ok := m.Result("emp-2", "role-b")
				So(ok, ShouldBeFalse)
			})

			Convey("Then employees keep insertion order", func() {
				So(m.EmployeeIDs(), ShouldResemble, []string{"emp-1", "emp-2"})
			})

			Convey("Then role candidates come back sorted by score descending", func() {
				candidates := m.RoleCandidates("role-a")
				So(len(candidates), ShouldEqual, 2)
				So(candidates[0].EmployeeID, ShouldEqual, "emp-2")
				So(candidates[1].EmployeeID, ShouldEqual, "emp-1")
			})
		})

		Convey("When adding a duplicate pair", func() {
			So(b.Add(result("emp-1", "role-a", 0.8)), ShouldBeNil)
			err := b.Add(result("emp-1", "role-a", 0.7))
			So(errors.Is(err, model.ErrDuplicatePair), ShouldBeTrue)
		})

		Convey("When adding a result without ids", func() {
			err := b.Add(model.GapResult{})
			So(err, ShouldEqual, model.ErrEmptyPairID)
		})
	})
}

func TestMatrixTieBreakOrder(t *testing.T) {
	Convey("Given two candidates with identical scores", t, func() {
		b := model.NewMatrixBuilder()
		So(b.Add(result("emp-1", "role-a", 0.5)), ShouldBeNil)
		So(b.Add(result("emp-2", "role-a", 0.5)), ShouldBeNil)
		m := b.Build()

		Convey("Then insertion order breaks the tie", func() {
			candidates := m.RoleCandidates("role-a")
			So(candidates[0].EmployeeID, ShouldEqual, "emp-1")
			So(candidates[1].EmployeeID, ShouldEqual, "emp-2")
		})
	})
}

func TestMatrixJSONRoundTrip(t *testing.T) {
	Convey("Given a populated matrix", t, func() {
		b := model.NewMatrixBuilder()
		So(b.Add(result("emp-2", "role-b", 0.42)), ShouldBeNil)
		So(b.Add(result("emp-1", "role-a", 0.77)), ShouldBeNil)
		m := b.Build()

		Convey("When serializing and deserializing it", func() {
			data, err := json.Marshal(m)
			So(err, ShouldBeNil)

			var restored model.CompatibilityMatrix
			So(json.Unmarshal(data, &restored), ShouldBeNil)

			Convey("Then contents and iteration order survive", func() {
				So(restored.Len(), ShouldEqual, 2)
				So(restored.EmployeeIDs(), ShouldResemble, m.EmployeeIDs())
				r, ok := restored.Result("emp-1", "role-a")
				So(ok, ShouldBeTrue)
				So(r.OverallScore, ShouldEqual, 0.77)
			})
		})
	})
}

func result(empID, roleID string, score float64) model.GapResult {
	return model.GapResult{
		EmployeeID:   empID,
		RoleID:       roleID,
		OverallScore: score,
		Band:         model.BandReady,
	}
}
