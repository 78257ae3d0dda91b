package entities

import "fmt"

// RiskLevel is the ordinal severity attached to a triage condition.
type RiskLevel string

const (
	RiskHigh       RiskLevel = "High"
	RiskMediumHigh RiskLevel = "Medium–High"
	RiskMedium     RiskLevel = "Medium"
	RiskLow        RiskLevel = "Low"
)

// Rank returns the sort weight of the risk level. Higher means more severe.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 4
	case RiskMediumHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	}
	return 0
}

// Icon returns the visual prefix used in the rendered risk table.
// Medium–High takes the High icon as the more conservative bound.
func (r RiskLevel) Icon() string {
	switch r {
	case RiskHigh, RiskMediumHigh:
		return "🔴"
	case RiskMedium:
		return "🟡"
	case RiskLow:
		return "🟢"
	}
	return "⚪️"
}

// Label returns the icon-prefixed label for display.
func (r RiskLevel) Label() string {
	return r.Icon() + " " + string(r)
}

// IsValid checks if the risk level is one of the defined constants.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskHigh, RiskMediumHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}

// ParseRiskLevel validates a risk label from a rule table.
func ParseRiskLevel(label string) (RiskLevel, error) {
	r := RiskLevel(label)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown risk level %q", label)
	}
	return r, nil
}
