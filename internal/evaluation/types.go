package evaluation

import (
	"time"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

// Category labels what kind of rule a golden case is meant to exercise.
type Category string

const (
	CategorySymptom     Category = "symptom"     // single-phrase matches
	CategoryCombination Category = "combination" // multi-symptom patterns
	CategoryTimeline    Category = "timeline"    // week-gated patterns
	CategoryNone        Category = "none"        // inputs that must not match
)

// ValidCategories returns all valid category values.
func ValidCategories() []Category {
	return []Category{CategorySymptom, CategoryCombination, CategoryTimeline, CategoryNone}
}

// IsValid checks if the category value is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategorySymptom, CategoryCombination, CategoryTimeline, CategoryNone:
		return true
	}
	return false
}

// GoldenCase represents a labeled triage input with expected outcomes.
type GoldenCase struct {
	ID                 string             `json:"id"`
	Input              string             `json:"input"`
	Category           Category           `json:"category"`
	ExpectedConditions []string           `json:"expected_conditions"`
	ExpectedTopRisk    entities.RiskLevel `json:"expected_top_risk,omitempty"`
	Difficulty         string             `json:"difficulty"` // easy, medium, hard
}

// EvalResult holds the evaluation outcome for a single case.
type EvalResult struct {
	CaseID            string
	Input             string
	Category          Category
	RecallAt5         float64
	MRRAt5            float64
	TopRiskCorrect    bool
	MatchCount        int
	MatchedConditions []string
	Latency           time.Duration
}

// EvalSummary holds aggregate metrics across all golden cases.
type EvalSummary struct {
	TotalCases      int
	AvgRecallAt5    float64
	AvgMRRAt5       float64
	TopRiskAccuracy float64
	AvgLatency      time.Duration
	CasesWithHits   int // cases that produced at least 1 risk-table entry
	ByCategory      map[Category]*CategorySummary
}

// CategorySummary holds metrics grouped by case category.
type CategorySummary struct {
	Count        int
	AvgRecallAt5 float64
	AvgMRRAt5    float64
}
