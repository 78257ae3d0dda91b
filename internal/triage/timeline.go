package triage

import (
	"strings"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

// CheckTimeline matches the input against week-gated rules. For each rule
// whose inclusive [min_week, max_week] window contains week, every listed
// symptom found in the input produces its own entry. Unlike combination
// rules, a single matching phrase is sufficient: any one red-flag symptom
// inside the gestational window is independently noteworthy.
//
// Callers must resolve the week first; absence of a week means no timeline
// matching at all.
func (rs *RuleSet) CheckTimeline(week int, text string) []entities.MatchEntry {
	input := strings.ToLower(text)

	var findings []entities.MatchEntry
	for _, rule := range rs.timeline {
		if week < rule.MinWeek || week > rule.MaxWeek {
			continue
		}
		for _, symptom := range rule.Symptoms {
			if !strings.Contains(input, symptom) {
				continue
			}
			w := week
			findings = append(findings, entities.MatchEntry{
				Source:          entities.SourceTimeline,
				MatchedSymptoms: []string{symptom},
				Condition:       rule.Condition,
				Risk:            rule.Risk,
				Action:          rule.Action,
				Week:            &w,
			})
		}
	}
	return findings
}
