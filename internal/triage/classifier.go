package triage

import (
	"strings"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

// ClassifySymptoms matches the input against the single-symptom table. One
// entry is emitted per rule whose phrase appears as a substring of the
// lower-cased input, in table declaration order. Risk ordering is the
// summarizer's job, not the classifier's.
func (rs *RuleSet) ClassifySymptoms(text string) []entities.MatchEntry {
	input := strings.ToLower(text)

	var findings []entities.MatchEntry
	for _, rule := range rs.symptoms {
		if !strings.Contains(input, rule.Phrase) {
			continue
		}
		findings = append(findings, entities.MatchEntry{
			Source:          entities.SourceSymptom,
			MatchedSymptoms: []string{rule.Phrase},
			Condition:       rule.Condition,
			Risk:            rule.Risk,
			Action:          rule.Action,
		})
	}
	return findings
}
