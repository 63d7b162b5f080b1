package analyzer

import "fmt"

const (
	// immediateActionLimit caps the bottleneck-driven action list.
	immediateActionLimit = 3
	// shortTermInvestmentLimit caps the ROI-driven investment list.
	shortTermInvestmentLimit = 5
	// investmentROIFloor keeps only clearly profitable training gaps.
	investmentROIFloor = 2.0
	// hiringGapFloor and hiringAffectedFloor mark gaps training cannot close.
	hiringGapFloor      = 80.0
	hiringAffectedFloor = 5
)

// Recommendations is the strategic action plan compiled from the aggregate
// signals. Each bucket holds templated lines ready for an executive report.
type Recommendations struct {
	ImmediateActions     []string `json:"immediate_actions"`
	ShortTermInvestments []string `json:"short_term_investments"`
	LongTermStrategy     []string `json:"long_term_strategy"`
	HiringPriorities     []string `json:"hiring_priorities"`
}

// StrategicRecommendations compiles the four buckets: the worst bottlenecks to
// act on now, the best training investments for the next quarters, chapters
// that need structural attention, and skills so scarce they call for hiring.
func (a *Analyzer) StrategicRecommendations(bottlenecks []Bottleneck, gaps []SkillGap, chapters []ChapterGap) Recommendations {
	var recs Recommendations

	for i, b := range bottlenecks {
		if i == immediateActionLimit {
			break
		}
		recs.ImmediateActions = append(recs.ImmediateActions, fmt.Sprintf(
			"address %s: %.0f%% gap blocking %d transitions (%s priority)",
			b.SkillName, b.GapPercentage, b.BlockedTransitions, b.Priority,
		))
	}

	for _, gap := range gaps {
		if len(recs.ShortTermInvestments) == shortTermInvestmentLimit {
			break
		}
		if gap.ROIEstimate <= investmentROIFloor {
			continue
		}
		recs.ShortTermInvestments = append(recs.ShortTermInvestments, fmt.Sprintf(
			"invest in %s training for %d employees (ROI estimate %.1f)",
			gap.SkillName, gap.EmployeesWithGap, gap.ROIEstimate,
		))
	}

	for _, ch := range chapters {
		if ch.ReadinessPercentage >= 30 {
			continue
		}
		recs.LongTermStrategy = append(recs.LongTermStrategy, fmt.Sprintf(
			"rebuild the %s chapter pipeline: only %.0f%% of transitions are ready",
			ch.Chapter, ch.ReadinessPercentage,
		))
	}

	for _, gap := range gaps {
		if gap.GapPercentage > hiringGapFloor && gap.EmployeesWithGap > hiringAffectedFloor {
			recs.HiringPriorities = append(recs.HiringPriorities, fmt.Sprintf(
				"hire externally for %s: %.0f%% gap across %d roles",
				gap.SkillName, gap.GapPercentage, gap.RolesRequiring,
			))
		}
	}
	return recs
}
