package gapcalc

import (
	"fmt"
	"math"
)

// weightTolerance is how far the component weights may drift from summing to
// 1.0 before they are rescaled.
const weightTolerance = 0.01

// Weights are the relative importances of the four score components.
type Weights struct {
	Skills           float64 `json:"skills"`
	Responsibilities float64 `json:"responsibilities"`
	Ambitions        float64 `json:"ambitions"`
	Dedication       float64 `json:"dedication"`
}

// DefaultWeights returns the standard component split.
func DefaultWeights() Weights {
	return Weights{
		Skills:           0.50,
		Responsibilities: 0.25,
		Ambitions:        0.15,
		Dedication:       0.10,
	}
}

// WeightsFromMap builds Weights from a configuration map. All four keys must
// be present; an off-sum map is accepted and rescaled later.
func WeightsFromMap(m map[string]float64) (Weights, error) {
	var w Weights
	for _, key := range []struct {
		name string
		dst  *float64
	}{
		{"skills", &w.Skills},
		{"responsibilities", &w.Responsibilities},
		{"ambitions", &w.Ambitions},
		{"dedication", &w.Dedication},
	} {
		v, ok := m[key.name]
		if !ok {
			return Weights{}, fmt.Errorf("%w: %s", ErrMissingWeight, key.name)
		}
		*key.dst = v
	}
	return w, nil
}

// sum returns the total of the four weights.
func (w Weights) sum() float64 {
	return w.Skills + w.Responsibilities + w.Ambitions + w.Dedication
}

// Normalized rescales the weights proportionally so they sum to 1.0. Weights
// already within tolerance are returned bit-identical, which makes the
// operation idempotent.
func (w Weights) Normalized() Weights {
	total := w.sum()
	if math.Abs(total-1.0) <= weightTolerance {
		return w
	}
	return Weights{
		Skills:           w.Skills / total,
		Responsibilities: w.Responsibilities / total,
		Ambitions:        w.Ambitions / total,
		Dedication:       w.Dedication / total,
	}
}
