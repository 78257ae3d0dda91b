package evaluation

import (
	"time"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	"github.com/nuranest/pregnancy-triage/internal/triage"
)

// Runner runs evaluation across a set of golden cases.
type Runner struct {
	rules *triage.RuleSet
}

func NewRunner(rules *triage.RuleSet) *Runner {
	return &Runner{rules: rules}
}

func (r *Runner) Run(cases []GoldenCase) *EvalSummary {
	summary := &EvalSummary{
		TotalCases: len(cases),
		ByCategory: make(map[Category]*CategorySummary),
	}

	topRiskCorrect := 0
	for _, gc := range cases {
		start := time.Now()

		symptoms := r.rules.ClassifySymptoms(gc.Input)
		combinations := r.rules.InferCombinations(gc.Input)
		var timelineEntries []entities.MatchEntry
		if week, ok := triage.ExtractWeek(gc.Input); ok {
			timelineEntries = r.rules.CheckTimeline(week, gc.Input)
		}
		table := triage.Summarize(symptoms, combinations, timelineEntries)
		latency := time.Since(start)

		conditions := make([]string, 0, len(table.Entries))
		for _, entry := range table.Entries {
			conditions = append(conditions, entry.Condition)
		}

		result := EvalResult{
			CaseID:            gc.ID,
			Input:             gc.Input,
			Category:          gc.Category,
			RecallAt5:         RecallAtK(gc.ExpectedConditions, conditions, 5),
			MRRAt5:            MRRAtK(gc.ExpectedConditions, conditions, 5),
			TopRiskCorrect:    TopRiskMatches(gc.ExpectedTopRisk, table.Entries),
			MatchCount:        len(table.Entries),
			MatchedConditions: conditions,
			Latency:           latency,
		}
		if result.TopRiskCorrect {
			topRiskCorrect++
		}

		r.updateSummary(summary, result)
	}

	r.finalizeSummary(summary, topRiskCorrect)
	return summary
}

func (r *Runner) updateSummary(s *EvalSummary, res EvalResult) {
	s.AvgRecallAt5 += res.RecallAt5
	s.AvgMRRAt5 += res.MRRAt5
	s.AvgLatency += res.Latency
	if res.MatchCount > 0 {
		s.CasesWithHits++
	}

	if _, ok := s.ByCategory[res.Category]; !ok {
		s.ByCategory[res.Category] = &CategorySummary{}
	}
	cs := s.ByCategory[res.Category]
	cs.Count++
	cs.AvgRecallAt5 += res.RecallAt5
	cs.AvgMRRAt5 += res.MRRAt5
}

func (r *Runner) finalizeSummary(s *EvalSummary, topRiskCorrect int) {
	if s.TotalCases > 0 {
		n := float64(s.TotalCases)
		s.AvgRecallAt5 /= n
		s.AvgMRRAt5 /= n
		s.TopRiskAccuracy = float64(topRiskCorrect) / n
		s.AvgLatency /= time.Duration(s.TotalCases)
	}

	for _, cs := range s.ByCategory {
		if cs.Count > 0 {
			n := float64(cs.Count)
			cs.AvgRecallAt5 /= n
			cs.AvgMRRAt5 /= n
		}
	}
}
