package triage

import (
	"sort"
	"strings"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

// RiskTable is the merged, deduplicated, risk-ordered view of all matcher
// output, carried both structured (for API responses) and rendered (for
// display).
type RiskTable struct {
	Entries  []entities.MatchEntry `json:"entries"`
	Markdown string                `json:"markdown"`
}

// Summarize merges the three matcher outputs into one risk table. Entries
// are concatenated in symptom, combination, timeline order, deduplicated on
// (condition, risk, sorted symptoms) keeping the first occurrence, then
// stable-sorted by risk severity descending. High-risk findings are never
// dropped regardless of table size.
func Summarize(symptomEntries, combinationEntries, timelineEntries []entities.MatchEntry) RiskTable {
	merged := make([]entities.MatchEntry, 0, len(symptomEntries)+len(combinationEntries)+len(timelineEntries))
	merged = append(merged, symptomEntries...)
	merged = append(merged, combinationEntries...)
	merged = append(merged, timelineEntries...)

	seen := make(map[string]struct{}, len(merged))
	deduped := merged[:0]
	for _, entry := range merged {
		key := entry.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, entry)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Risk.Rank() > deduped[j].Risk.Rank()
	})

	return RiskTable{
		Entries:  deduped,
		Markdown: renderMarkdown(deduped),
	}
}

func renderMarkdown(entries []entities.MatchEntry) string {
	lines := []string{
		"### 📊 Risk Summary\n",
		"| Risk | Condition | Action | Matched Symptoms |",
		"|------|-----------|--------|------------------|",
	}

	for _, entry := range entries {
		condition := entry.Condition
		if condition == "" {
			condition = "—"
		}
		action := entry.Action
		if action == "" {
			action = "—"
		}
		symptoms := strings.Join(entry.MatchedSymptoms, ", ")
		if symptoms == "" {
			symptoms = "—"
		}
		lines = append(lines, "| "+entry.Risk.Label()+" | "+condition+" | "+action+" | "+symptoms+" |")
	}

	return strings.Join(lines, "\n")
}
