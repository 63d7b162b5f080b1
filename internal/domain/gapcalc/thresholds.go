package gapcalc

import (
	"fmt"

	"github.com/quether/talentgap/internal/domain/model"
)

// Thresholds are the lower-bound scores for each band above NOT_VIABLE.
type Thresholds struct {
	Ready            float64 `json:"ready"`
	ReadyWithSupport float64 `json:"ready_with_support"`
	Near             float64 `json:"near"`
	Far              float64 `json:"far"`
}

// DefaultThresholds returns the standard banding cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Ready:            0.75,
		ReadyWithSupport: 0.60,
		Near:             0.40,
		Far:              0.20,
	}
}

// ThresholdsFromMap builds Thresholds from a configuration map. All four
// banded keys must be present; NOT_VIABLE has no threshold.
func ThresholdsFromMap(m map[string]float64) (Thresholds, error) {
	var t Thresholds
	for _, key := range []struct {
		name string
		dst  *float64
	}{
		{"ready", &t.Ready},
		{"ready_with_support", &t.ReadyWithSupport},
		{"near", &t.Near},
		{"far", &t.Far},
	} {
		v, ok := m[key.name]
		if !ok {
			return Thresholds{}, fmt.Errorf("%w: %s", ErrMissingThreshold, key.name)
		}
		*key.dst = v
	}
	return t, nil
}

// Classify picks the highest band whose threshold the score meets or exceeds.
func (t Thresholds) Classify(score float64) model.GapBand {
	switch {
	case score >= t.Ready:
		return model.BandReady
	case score >= t.ReadyWithSupport:
		return model.BandReadyWithSupport
	case score >= t.Near:
		return model.BandNear
	case score >= t.Far:
		return model.BandFar
	default:
		return model.BandNotViable
	}
}

// Lower returns the configured lower bound for a band. NOT_VIABLE has none.
func (t Thresholds) Lower(b model.GapBand) (float64, bool) {
	switch b {
	case model.BandReady:
		return t.Ready, true
	case model.BandReadyWithSupport:
		return t.ReadyWithSupport, true
	case model.BandNear:
		return t.Near, true
	case model.BandFar:
		return t.Far, true
	default:
		return 0, false
	}
}
