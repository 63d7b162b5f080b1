// Package vocab holds the keyword vocabulary and progression rules that drive
// the text-matching parts of gap scoring. Both are injectable so the engine
// can be reused across organizations without code changes; the defaults mirror
// the consulting-org vocabulary the system was built for.
package vocab

import (
	"regexp"
	"strings"
)

// wordPattern extracts candidate words of four or more letters.
var wordPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// Vocabulary is a fixed set of domain terms recognized during keyword
// extraction. Terms are lowercase.
type Vocabulary map[string]struct{}

// New builds a vocabulary from a term list, lowercasing each entry.
func New(terms ...string) Vocabulary {
	v := make(Vocabulary, len(terms))
	for _, t := range terms {
		v[strings.ToLower(t)] = struct{}{}
	}
	return v
}

// Default returns the built-in organization vocabulary.
func Default() Vocabulary {
	return New(
		"okr", "okrs", "strategy", "strategic",
		"analysis", "analytics", "data", "crm", "automation",
		"campaign", "campaigns", "creative", "copy", "narrative",
		"design", "visual", "identity", "branding",
		"social", "media", "influencer", "creators",
		"performance", "growth", "acquisition",
		"workshop", "discovery", "roadmap", "governance",
		"client", "clients", "project", "projects",
		"lead", "leading", "management", "stakeholder", "stakeholders",
		"storytelling", "email",
	)
}

// Extract returns the vocabulary terms present across the given texts.
func (v Vocabulary) Extract(texts []string) map[string]struct{} {
	found := make(map[string]struct{})
	for _, text := range texts {
		for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
			if _, ok := v[word]; ok {
				found[word] = struct{}{}
			}
		}
	}
	return found
}

// Intersection counts the terms common to two extracted sets.
func Intersection(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for term := range a {
		if _, ok := b[term]; ok {
			n++
		}
	}
	return n
}

// maxProgressionBonus caps the summed progression bonus.
const maxProgressionBonus = 0.30

// ProgressionRule awards a bonus when the current responsibilities match one
// pattern and the target responsibilities match its counterpart, e.g. someone
// executing OKRs moving into a role that defines them.
type ProgressionRule struct {
	Current *regexp.Regexp
	Target  *regexp.Regexp
	Bonus   float64
}

// DefaultProgressionRules returns the built-in growth patterns.
func DefaultProgressionRules() []ProgressionRule {
	return []ProgressionRule{
		{Current: regexp.MustCompile(`execute.*okr`), Target: regexp.MustCompile(`define.*okr`), Bonus: 0.20},
		{Current: regexp.MustCompile(`support.*analysis`), Target: regexp.MustCompile(`lead.*analysis`), Bonus: 0.15},
		{Current: regexp.MustCompile(`manage.*project`), Target: regexp.MustCompile(`direct.*strategy`), Bonus: 0.20},
		{Current: regexp.MustCompile(`create.*content`), Target: regexp.MustCompile(`direct.*creative`), Bonus: 0.15},
		{Current: regexp.MustCompile(`configure.*crm`), Target: regexp.MustCompile(`data.*architecture`), Bonus: 0.20},
	}
}

// ProgressionBonus sums the bonuses of every rule whose pattern pair matches,
// capped at 0.30. Inputs are matched lowercase.
func ProgressionBonus(rules []ProgressionRule, currentText, targetText string) float64 {
	currentText = strings.ToLower(currentText)
	targetText = strings.ToLower(targetText)

	bonus := 0.0
	for _, rule := range rules {
		if rule.Current.MatchString(currentText) && rule.Target.MatchString(targetText) {
			bonus += rule.Bonus
		}
	}
	if bonus > maxProgressionBonus {
		return maxProgressionBonus
	}
	return bonus
}
