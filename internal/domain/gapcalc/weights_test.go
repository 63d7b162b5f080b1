package gapcalc_test

import (
	"errors"
	"testing"

	"github.com/quether/talentgap/internal/domain/gapcalc"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWeights(t *testing.T) {
	Convey("Given the default weights", t, func() {
		w := gapcalc.DefaultWeights()

		Convey("Then they already sum to one and survive normalization untouched", func() {
			So(w.Normalized(), ShouldResemble, w)
		})
	})

	Convey("Given weights off the unit sum", t, func() {
		w := gapcalc.Weights{Skills: 1, Responsibilities: 1, Ambitions: 1, Dedication: 1}

		Convey("When normalizing them", func() {
			n := w.Normalized()

			Convey("Then each component is rescaled proportionally", func() {
				So(n.Skills, ShouldAlmostEqual, 0.25)
				So(n.Responsibilities, ShouldAlmostEqual, 0.25)
				So(n.Ambitions, ShouldAlmostEqual, 0.25)
				So(n.Dedication, ShouldAlmostEqual, 0.25)
			})

			Convey("Then normalizing again changes nothing", func() {
				So(n.Normalized(), ShouldResemble, n)
			})
		})
	})

	Convey("Given weights within the tolerance of one", t, func() {
		w := gapcalc.Weights{Skills: 0.505, Responsibilities: 0.25, Ambitions: 0.15, Dedication: 0.10}

		Convey("Then normalization returns them bit-identical", func() {
			So(w.Normalized(), ShouldResemble, w)
		})
	})
}

func TestWeightsFromMap(t *testing.T) {
	Convey("Given a complete weight map", t, func() {
		w, err := gapcalc.WeightsFromMap(map[string]float64{
			"skills":           0.5,
			"responsibilities": 0.25,
			"ambitions":        0.15,
			"dedication":       0.1,
		})
		So(err, ShouldBeNil)
		So(w.Skills, ShouldEqual, 0.5)
		So(w.Dedication, ShouldEqual, 0.1)
	})

	Convey("Given a map missing a component", t, func() {
		_, err := gapcalc.WeightsFromMap(map[string]float64{
			"skills":           0.5,
			"responsibilities": 0.25,
			"ambitions":        0.15,
		})

		Convey("Then it fails loudly instead of assuming a default", func() {
			So(errors.Is(err, gapcalc.ErrMissingWeight), ShouldBeTrue)
		})
	})
}

func TestThresholds(t *testing.T) {
	Convey("Given the default thresholds", t, func() {
		th := gapcalc.DefaultThresholds()

		Convey("Then scores classify into the highest band they reach", func() {
			So(string(th.Classify(0.80)), ShouldEqual, "READY")
			So(string(th.Classify(0.75)), ShouldEqual, "READY")
			So(string(th.Classify(0.74)), ShouldEqual, "READY_WITH_SUPPORT")
			So(string(th.Classify(0.60)), ShouldEqual, "READY_WITH_SUPPORT")
			So(string(th.Classify(0.45)), ShouldEqual, "NEAR")
			So(string(th.Classify(0.25)), ShouldEqual, "FAR")
			So(string(th.Classify(0.10)), ShouldEqual, "NOT_VIABLE")
		})
	})

	Convey("Given a threshold map missing a band", t, func() {
		_, err := gapcalc.ThresholdsFromMap(map[string]float64{
			"ready": 0.75,
			"near":  0.40,
			"far":   0.20,
		})
		So(errors.Is(err, gapcalc.ErrMissingThreshold), ShouldBeTrue)
	})
}
