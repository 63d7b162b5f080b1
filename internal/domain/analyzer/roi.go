package analyzer

import "sort"

// ROI priority buckets.
const (
	ROIHigh           = "HIGH"
	ROIMedium         = "MEDIUM"
	ROILow            = "LOW"
	ROINotRecommended = "NOT_RECOMMENDED"
)

// TrainingROI is the economics of closing one skill gap through training.
type TrainingROI struct {
	SkillID           string  `json:"skill_id"`
	SkillName         string  `json:"skill_name"`
	AffectedEmployees int     `json:"affected_employees"`
	EstimatedCost     float64 `json:"estimated_cost"`
	EstimatedBenefit  float64 `json:"estimated_benefit"`
	Ratio             float64 `json:"ratio"`
	PaybackMonths     int     `json:"payback_months"`
	Priority          string  `json:"priority"`
}

// TrainingROIs estimates cost and benefit for each skill gap. Cost is the
// per-skill training cost times affected employees; benefit counts only
// high-potential affected pairs, discounted by the training success rate.
// The ratio is the net return over cost, so break-even sits at zero.
// Gaps with nobody affected are skipped. Sorted by ratio descending.
func (a *Analyzer) TrainingROIs(gaps []SkillGap) []TrainingROI {
	var out []TrainingROI
	for _, gap := range gaps {
		if len(gap.Affected) == 0 {
			continue
		}
		highPotential := 0
		for _, p := range gap.Affected {
			if p.OverallScore >= highPotentialScore {
				highPotential++
			}
		}

		cost := float64(len(gap.Affected)) * a.trainingCost
		benefit := float64(highPotential) * trainingSuccessRate * a.promotionValue
		ratio := 0.0
		if cost > 0 {
			ratio = (benefit - cost) / cost
		}
		out = append(out, TrainingROI{
			SkillID:           gap.SkillID,
			SkillName:         gap.SkillName,
			AffectedEmployees: len(gap.Affected),
			EstimatedCost:     cost,
			EstimatedBenefit:  benefit,
			Ratio:             ratio,
			PaybackMonths:     paybackMonths(ratio),
			Priority:          roiPriority(ratio),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ratio != out[j].Ratio {
			return out[i].Ratio > out[j].Ratio
		}
		return out[i].SkillID < out[j].SkillID
	})
	return out
}

// paybackMonths maps the net ROI ratio to a coarse payback estimate.
// A negative value means the investment never pays back.
func paybackMonths(ratio float64) int {
	switch {
	case ratio <= 0:
		return -1
	case ratio >= 2:
		return 6
	case ratio >= 1:
		return 12
	default:
		return 24
	}
}

func roiPriority(ratio float64) string {
	switch {
	case ratio >= 3:
		return ROIHigh
	case ratio >= 1.5:
		return ROIMedium
	case ratio >= 0.5:
		return ROILow
	default:
		return ROINotRecommended
	}
}
