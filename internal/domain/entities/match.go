package entities

import (
	"sort"
	"strings"
)

// MatchSource identifies which matcher produced a MatchEntry.
type MatchSource string

const (
	SourceSymptom     MatchSource = "symptom"
	SourceCombination MatchSource = "combination"
	SourceTimeline    MatchSource = "timeline"
)

// MatchEntry is the unified record produced by the symptom classifier, the
// combination matcher and the timeline matcher. Entries are produced fresh
// per query and never persisted.
type MatchEntry struct {
	Source          MatchSource `json:"source"`
	MatchedSymptoms []string    `json:"matched_symptoms"`
	Condition       string      `json:"condition"`
	Risk            RiskLevel   `json:"risk"`
	Action          string      `json:"action"`
	Week            *int        `json:"week,omitempty"`
}

// DedupKey returns the identity used to collapse duplicate findings across
// matchers: condition, risk and the sorted symptom list. Source is
// deliberately excluded so the same finding surfaced by two matchers counts
// once.
func (m MatchEntry) DedupKey() string {
	symptoms := make([]string, len(m.MatchedSymptoms))
	copy(symptoms, m.MatchedSymptoms)
	sort.Strings(symptoms)
	return m.Condition + "|" + string(m.Risk) + "|" + strings.Join(symptoms, ",")
}
