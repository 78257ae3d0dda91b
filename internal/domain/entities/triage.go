package entities

import "time"

// TriageSession carries the state of a clarification round trip. It is
// created when a first pass over the input yields no match at all, and
// destroyed after the merged text has been re-run through the matchers once.
type TriageSession struct {
	ID               string    `json:"id" db:"id"`
	OriginalInput    string    `json:"original_input" db:"original_input"`
	PendingQuestions []string  `json:"pending_questions" db:"pending_questions"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Assessment is the structured response for an ask or clarify request. The
// risk fields are always populated from the rule engine, even when answer
// generation fails.
type Assessment struct {
	Answer             string           `json:"answer"`
	Classifications    []MatchEntry     `json:"classifications"`
	TimelineResults    []MatchEntry     `json:"timeline_results"`
	CombinationResults []MatchEntry     `json:"combination_results"`
	RiskTable          []MatchEntry     `json:"risk_table"`
	MarkdownSummary    string           `json:"markdown_summary"`
	Sources            []string         `json:"sources,omitempty"`
	ConfidenceScore    float64          `json:"confidence_score"`
	ProcessingTime     float64          `json:"processing_time"`
	Timestamp          time.Time        `json:"timestamp"`
	NeedsClarification bool             `json:"needs_clarification"`
	SessionID          string           `json:"session_id,omitempty"`
	Questions          []TriageQuestion `json:"questions,omitempty"`
}
