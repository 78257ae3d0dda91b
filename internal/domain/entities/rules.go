package entities

// SymptomRule maps a single symptom phrase to a condition and risk level.
// Identity is the phrase, which is unique across the table.
type SymptomRule struct {
	Phrase    string    `json:"phrase"`
	Risk      RiskLevel `json:"risk"`
	Condition string    `json:"condition"`
	Action    string    `json:"action"`
}

// CombinationRule fires only when every listed symptom phrase is present in
// the input. Partial matches never fire.
type CombinationRule struct {
	Symptoms  []string  `json:"symptoms"`
	Condition string    `json:"condition"`
	Risk      RiskLevel `json:"risk"`
	Action    string    `json:"action"`
}

// TimelineRule applies only when the gestational week falls inside the
// inclusive [MinWeek, MaxWeek] window. Within an applying rule each listed
// symptom found in the input produces its own match, so a single red-flag
// symptom inside the window is enough.
type TimelineRule struct {
	MinWeek   int       `json:"min_week"`
	MaxWeek   int       `json:"max_week"`
	Symptoms  []string  `json:"symptoms"`
	Condition string    `json:"condition"`
	Risk      RiskLevel `json:"risk"`
	Action    string    `json:"action"`
}

// TriageQuestion is a fixed follow-up question asked when no rule fires on
// the initial input.
type TriageQuestion struct {
	Key      string `json:"key"`
	Question string `json:"question"`
}
