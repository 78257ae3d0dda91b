package triage

import (
	"strings"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

// InferCombinations matches the input against the conjunctive combination
// table. A rule fires only when every one of its symptom phrases is present;
// partial matches never fire. All firing rules are emitted, no early exit.
func (rs *RuleSet) InferCombinations(text string) []entities.MatchEntry {
	input := strings.ToLower(text)

	var findings []entities.MatchEntry
	for _, rule := range rs.combinations {
		matched := 0
		for _, symptom := range rule.Symptoms {
			if strings.Contains(input, symptom) {
				matched++
			}
		}
		if matched != len(rule.Symptoms) {
			continue
		}

		symptoms := make([]string, len(rule.Symptoms))
		copy(symptoms, rule.Symptoms)
		findings = append(findings, entities.MatchEntry{
			Source:          entities.SourceCombination,
			MatchedSymptoms: symptoms,
			Condition:       rule.Condition,
			Risk:            rule.Risk,
			Action:          rule.Action,
		})
	}
	return findings
}
