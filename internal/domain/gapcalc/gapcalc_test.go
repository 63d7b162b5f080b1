package gapcalc_test

import (
	"testing"

	"github.com/quether/talentgap/internal/domain/gapcalc"
	"github.com/quether/talentgap/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func testCatalog() map[string]model.Skill {
	return map[string]model.Skill{
		"skill-okr":      {ID: "skill-okr", Name: "OKR Definition", Category: "strategy", Weight: 5},
		"skill-analysis": {ID: "skill-analysis", Name: "Data Analysis", Category: "strategy", Weight: 3},
		"skill-copy":     {ID: "skill-copy", Name: "Copywriting", Category: "creative", Weight: 4},
	}
}

func TestSkillsComponent(t *testing.T) {
	Convey("Given a calculator over a small catalog", t, func() {
		calc := gapcalc.New(testCatalog())

		Convey("When the role requires no skills", func() {
			r := calc.CalculateGap(model.Employee{ID: "e"}, model.Role{ID: "r"})
			So(r.Components.Skills, ShouldEqual, 1.0)
		})

		Convey("When no required skill resolves in the catalog", func() {
			role := model.Role{ID: "r", RequiredSkills: []string{"skill-ghost"}}
			r := calc.CalculateGap(model.Employee{ID: "e"}, role)
			So(r.Components.Skills, ShouldEqual, 0.0)
		})

		Convey("When the employee holds the required skills at mixed levels", func() {
			emp := model.Employee{
				ID: "e",
				Skills: map[string]model.SkillLevel{
					"skill-okr":      model.LevelExpert,
					"skill-analysis": model.LevelAdvanced,
				},
			}
			role := model.Role{ID: "r", RequiredSkills: []string{"skill-okr", "skill-analysis"}}
			r := calc.CalculateGap(emp, role)

			Convey("Then the component is the importance-weighted mean", func() {
				// okr: 1.0 * 1.0, analysis: 0.75 * 0.6, over 1.6 total weight.
				So(r.Components.Skills, ShouldAlmostEqual, 1.45/1.6, 0.0001)
			})
		})

		Convey("When the employee lacks a required skill entirely", func() {
			role := model.Role{ID: "r", RequiredSkills: []string{"skill-okr"}}
			r := calc.CalculateGap(model.Employee{ID: "e"}, role)

			Convey("Then the absent skill counts as novice, not zero", func() {
				So(r.Components.Skills, ShouldAlmostEqual, 0.25, 0.0001)
			})
		})
	})
}

func TestResponsibilitiesComponent(t *testing.T) {
	Convey("Given a calculator with the default vocabulary", t, func() {
		calc := gapcalc.New(testCatalog())

		Convey("When the role lists no responsibilities", func() {
			r := calc.CalculateGap(
				model.Employee{ID: "e", Responsibilities: []string{"anything"}},
				model.Role{ID: "r"},
			)
			So(r.Components.Responsibilities, ShouldEqual, 1.0)
		})

		Convey("When the employee has no current responsibilities", func() {
			role := model.Role{ID: "r", Responsibilities: []string{"lead data analysis"}}
			r := calc.CalculateGap(model.Employee{ID: "e"}, role)
			So(r.Components.Responsibilities, ShouldEqual, 0.0)
		})

		Convey("When responsibilities overlap on keywords", func() {
			emp := model.Employee{
				ID:               "e",
				Responsibilities: []string{"work with data and produce analysis reports"},
			}
			role := model.Role{
				ID:               "r",
				Responsibilities: []string{"own data analysis and campaign reporting"},
			}
			r := calc.CalculateGap(emp, role)

			Convey("Then the component is the covered share of target keywords", func() {
				// Target keywords: data, analysis, campaign; employee covers two.
				So(r.Components.Responsibilities, ShouldAlmostEqual, 2.0/3.0, 0.0001)
			})
		})

		Convey("When a progression pattern links current to target duties", func() {
			emp := model.Employee{
				ID:               "e",
				Responsibilities: []string{"support analysis for client campaigns"},
			}
			role := model.Role{
				ID:               "r",
				Responsibilities: []string{"lead analysis practice"},
			}
			r := calc.CalculateGap(emp, role)

			Convey("Then the bonus raises the component above plain overlap", func() {
				// Target keywords: lead, analysis; overlap covers analysis only.
				So(r.Components.Responsibilities, ShouldAlmostEqual, 0.5+0.15, 0.0001)
			})
		})
	})
}

func TestAmbitionsComponent(t *testing.T) {
	Convey("Given a calculator with the default vocabulary", t, func() {
		calc := gapcalc.New(testCatalog())

		Convey("When the employee states no ambitions", func() {
			r := calc.CalculateGap(model.Employee{ID: "e"}, model.Role{ID: "r", Title: "Strategy Lead"})
			So(r.Components.Ambitions, ShouldEqual, 0.5)
		})

		Convey("When ambitions name the role's domain and seniority", func() {
			emp := model.Employee{
				ID:        "e",
				Ambitions: []string{"grow into a senior strategy position"},
			}
			role := model.Role{ID: "r", Title: "Head of Strategy", Seniority: "senior"}
			r := calc.CalculateGap(emp, role)

			Convey("Then keyword ratio plus the seniority bonus apply", func() {
				// Ambition keywords: strategy; fully covered, plus 0.20 bonus.
				So(r.Components.Ambitions, ShouldAlmostEqual, 1.0, 0.0001)
			})
		})

		Convey("When ambitions share no keywords with the role", func() {
			emp := model.Employee{
				ID:        "e",
				Ambitions: []string{"become a better illustrator"},
			}
			role := model.Role{ID: "r", Title: "Head of Strategy", Seniority: "senior"}
			r := calc.CalculateGap(emp, role)
			So(r.Components.Ambitions, ShouldEqual, 0.0)
		})
	})
}

func TestDedicationComponent(t *testing.T) {
	Convey("Given a calculator", t, func() {
		calc := gapcalc.New(testCatalog())

		Convey("When both ranges coincide", func() {
			r := calc.CalculateGap(
				model.Employee{ID: "e", Dedication: "30-40h"},
				model.Role{ID: "r", Dedication: "30-40h"},
			)
			So(r.Components.Dedication, ShouldEqual, 1.0)
		})

		Convey("When the ranges partially overlap", func() {
			r := calc.CalculateGap(
				model.Employee{ID: "e", Dedication: "25-35h"},
				model.Role{ID: "r", Dedication: "30-40h"},
			)
			// Overlap 30-35 over a role width of 10.
			So(r.Components.Dedication, ShouldAlmostEqual, 0.5, 0.0001)
		})

		Convey("When the ranges are disjoint", func() {
			r := calc.CalculateGap(
				model.Employee{ID: "e", Dedication: "10-20h"},
				model.Role{ID: "r", Dedication: "30-40h"},
			)
			// Distance 10 hours decays linearly over 20.
			So(r.Components.Dedication, ShouldAlmostEqual, 0.5, 0.0001)
		})

		Convey("When a range cannot be parsed", func() {
			r := calc.CalculateGap(
				model.Employee{ID: "e", Dedication: "full time"},
				model.Role{ID: "r", Dedication: "30-40h"},
			)

			Convey("Then the fallback score applies instead of zero", func() {
				So(r.Components.Dedication, ShouldEqual, 0.8)
			})
		})
	})
}

func TestCalculateGapBandingAndDetails(t *testing.T) {
	Convey("Given a strong candidate for a strategy role", t, func() {
		calc := gapcalc.New(testCatalog())
		emp := model.Employee{
			ID: "emp-1",
			Skills: map[string]model.SkillLevel{
				"skill-okr":      model.LevelExpert,
				"skill-analysis": model.LevelAdvanced,
			},
			Responsibilities: []string{"execute okr reviews and support data analysis"},
			Ambitions:        []string{"grow into a senior strategy role leading analysis"},
			Dedication:       "30-40h",
		}
		role := model.Role{
			ID:               "role-1",
			Title:            "Strategy Lead",
			Seniority:        "senior",
			Chapter:          "Strategy",
			RequiredSkills:   []string{"skill-okr", "skill-analysis"},
			Responsibilities: []string{"define okr strategy and lead data analysis"},
			Dedication:       "30-40h",
		}

		Convey("When scoring the pair", func() {
			r := calc.CalculateGap(emp, role)

			Convey("Then the overall score lands in the ready band", func() {
				So(r.OverallScore, ShouldBeGreaterThanOrEqualTo, 0.75)
				So(r.Band, ShouldEqual, model.BandReady)
				So(r.IsReady(), ShouldBeTrue)
			})

			Convey("Then a ready pair records no blocking gaps", func() {
				So(r.DetailedGaps, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a poor fit for the same role", t, func() {
		calc := gapcalc.New(testCatalog())
		emp := model.Employee{
			ID:               "emp-2",
			Skills:           map[string]model.SkillLevel{"skill-copy": model.LevelExpert},
			Responsibilities: []string{"write copy for email campaigns"},
			Ambitions:        []string{"become a creative director"},
			Dedication:       "10-15h",
		}
		role := model.Role{
			ID:               "role-1",
			Title:            "Strategy Lead",
			Seniority:        "senior",
			RequiredSkills:   []string{"skill-okr", "skill-analysis"},
			Responsibilities: []string{"define okr strategy and lead data analysis"},
			Dedication:       "30-40h",
		}

		Convey("When scoring the pair", func() {
			r := calc.CalculateGap(emp, role)

			Convey("Then the score stays low and the band reflects it", func() {
				So(r.OverallScore, ShouldBeLessThan, 0.60)
				So(r.IsReady(), ShouldBeFalse)
			})

			Convey("Then the blocking skills are named with current levels", func() {
				So(r.DetailedGaps, ShouldContain, model.SkillGapLine("OKR Definition", model.LevelNovice))
				So(r.DetailedGaps, ShouldContain, model.SkillGapLine("Data Analysis", model.LevelNovice))
			})

			Convey("Then the weak non-skill components are flagged too", func() {
				So(r.DetailedGaps, ShouldContain, model.ResponsibilityGapLine)
				So(r.DetailedGaps, ShouldContain, model.DedicationGapLine)
			})
		})
	})
}

func TestBoundaryBanding(t *testing.T) {
	Convey("Given a candidate whose components land exactly on 0.78", t, func() {
		calc := gapcalc.New(testCatalog())
		emp := model.Employee{
			ID:     "emp-1",
			Skills: map[string]model.SkillLevel{"skill-okr": model.LevelAdvanced},
		}
		role := model.Role{ID: "role-1", RequiredSkills: []string{"skill-okr"}}

		Convey("When scoring the pair", func() {
			r := calc.CalculateGap(emp, role)

			Convey("Then the defaulted components combine to 0.78", func() {
				// skills 0.75, responsibilities 1.0 (no target),
				// ambitions 0.5 (none stated), dedication 0.8 (unparseable).
				So(r.Components.Skills, ShouldAlmostEqual, 0.75, 0.0001)
				So(r.Components.Responsibilities, ShouldEqual, 1.0)
				So(r.Components.Ambitions, ShouldEqual, 0.5)
				So(r.Components.Dedication, ShouldEqual, 0.8)
				So(r.OverallScore, ShouldAlmostEqual, 0.78, 0.0001)
			})

			Convey("Then 0.78 sits above the ready floor, not in the band below", func() {
				So(r.Band, ShouldEqual, model.BandReady)
			})
		})
	})
}

func TestScoreMonotonicity(t *testing.T) {
	Convey("Given the same employee at two proficiency levels", t, func() {
		calc := gapcalc.New(testCatalog())
		role := model.Role{
			ID:             "role-1",
			RequiredSkills: []string{"skill-okr", "skill-analysis"},
		}
		weaker := model.Employee{
			ID:     "e",
			Skills: map[string]model.SkillLevel{"skill-okr": model.LevelNovice},
		}
		stronger := model.Employee{
			ID:     "e",
			Skills: map[string]model.SkillLevel{"skill-okr": model.LevelExpert},
		}

		Convey("Then raising a skill level never lowers the overall score", func() {
			low := calc.CalculateGap(weaker, role)
			high := calc.CalculateGap(stronger, role)
			So(high.OverallScore, ShouldBeGreaterThanOrEqualTo, low.OverallScore)
		})
	})
}

func TestConfiguredWeightsAndThresholds(t *testing.T) {
	Convey("Given a calculator with custom weights and thresholds", t, func() {
		calc := gapcalc.New(testCatalog(),
			gapcalc.WithWeights(gapcalc.Weights{Skills: 2, Responsibilities: 1, Ambitions: 1, Dedication: 1}),
			gapcalc.WithThresholds(gapcalc.Thresholds{Ready: 0.9, ReadyWithSupport: 0.7, Near: 0.5, Far: 0.3}),
		)

		Convey("Then the weights come back normalized", func() {
			w := calc.Weights()
			So(w.Skills, ShouldAlmostEqual, 0.4)
			So(w.Responsibilities, ShouldAlmostEqual, 0.2)
		})

		Convey("Then banding follows the configured cut-offs", func() {
			So(calc.Thresholds().Classify(0.85), ShouldEqual, model.BandReadyWithSupport)
		})
	})
}
