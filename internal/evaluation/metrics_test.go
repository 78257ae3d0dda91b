package evaluation

import (
	"testing"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

func TestRecallAtK(t *testing.T) {
	tests := []struct {
		name      string
		relevant  []string
		retrieved []string
		k         int
		want      float64
	}{
		{
			name:      "all relevant found",
			relevant:  []string{"a", "b"},
			retrieved: []string{"a", "b", "c"},
			k:         5,
			want:      1.0,
		},
		{
			name:      "half found",
			relevant:  []string{"a", "b"},
			retrieved: []string{"a", "c"},
			k:         5,
			want:      0.5,
		},
		{
			name:      "relevant beyond k not counted",
			relevant:  []string{"c"},
			retrieved: []string{"a", "b", "c"},
			k:         2,
			want:      0.0,
		},
		{
			name:      "empty relevant",
			relevant:  nil,
			retrieved: []string{"a"},
			k:         5,
			want:      0.0,
		},
		{
			name:      "empty retrieved",
			relevant:  []string{"a"},
			retrieved: nil,
			k:         5,
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecallAtK(tt.relevant, tt.retrieved, tt.k)
			if got != tt.want {
				t.Errorf("RecallAtK() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMRRAtK(t *testing.T) {
	tests := []struct {
		name      string
		relevant  []string
		retrieved []string
		k         int
		want      float64
	}{
		{
			name:      "first position",
			relevant:  []string{"a"},
			retrieved: []string{"a", "b"},
			k:         5,
			want:      1.0,
		},
		{
			name:      "second position",
			relevant:  []string{"b"},
			retrieved: []string{"a", "b"},
			k:         5,
			want:      0.5,
		},
		{
			name:      "third position",
			relevant:  []string{"c"},
			retrieved: []string{"a", "b", "c"},
			k:         5,
			want:      1.0 / 3.0,
		},
		{
			name:      "not found within k",
			relevant:  []string{"c"},
			retrieved: []string{"a", "b", "c"},
			k:         2,
			want:      0.0,
		},
		{
			name:      "empty relevant",
			relevant:  nil,
			retrieved: []string{"a"},
			k:         5,
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MRRAtK(tt.relevant, tt.retrieved, tt.k)
			if got != tt.want {
				t.Errorf("MRRAtK() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopRiskMatches(t *testing.T) {
	high := []entities.MatchEntry{{Risk: entities.RiskHigh}, {Risk: entities.RiskLow}}

	if !TopRiskMatches(entities.RiskHigh, high) {
		t.Error("expected high top risk to match")
	}
	if TopRiskMatches(entities.RiskLow, high) {
		t.Error("expected low top risk not to match high table")
	}
	if !TopRiskMatches("", nil) {
		t.Error("expected empty expectation to match empty table")
	}
	if TopRiskMatches(entities.RiskHigh, nil) {
		t.Error("expected empty table not to match high expectation")
	}
	if TopRiskMatches("", high) {
		t.Error("expected empty expectation not to match populated table")
	}
}
