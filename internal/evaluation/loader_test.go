package evaluation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

func writeGoldenFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golden_cases.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write golden file: %v", err)
	}
	return path
}

func TestLoadGoldenCases(t *testing.T) {
	path := writeGoldenFile(t, `[
		{
			"id": "gc-1",
			"input": "I have heavy bleeding",
			"category": "symptom",
			"expected_conditions": ["Possible miscarriage"],
			"expected_top_risk": "High",
			"difficulty": "easy"
		},
		{
			"id": "gc-2",
			"input": "What should I eat?",
			"category": "none",
			"difficulty": "easy"
		}
	]`)

	cases, err := LoadGoldenCases(path)
	if err != nil {
		t.Fatalf("LoadGoldenCases() error = %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].Category != CategorySymptom {
		t.Errorf("expected symptom category, got %q", cases[0].Category)
	}
	if cases[0].ExpectedTopRisk != entities.RiskHigh {
		t.Errorf("expected High top risk, got %q", cases[0].ExpectedTopRisk)
	}
	if err := ValidateGoldenCases(cases); err != nil {
		t.Errorf("ValidateGoldenCases() error = %v", err)
	}
}

func TestLoadGoldenCases_MissingFile(t *testing.T) {
	if _, err := LoadGoldenCases("does-not-exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadGoldenCases_InvalidJSON(t *testing.T) {
	path := writeGoldenFile(t, `{not valid`)
	if _, err := LoadGoldenCases(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestValidateGoldenCases(t *testing.T) {
	tests := []struct {
		name    string
		cases   []GoldenCase
		wantErr bool
	}{
		{
			name: "valid",
			cases: []GoldenCase{
				{ID: "a", Input: "text", Category: CategorySymptom, Difficulty: "easy"},
			},
			wantErr: false,
		},
		{
			name: "missing id",
			cases: []GoldenCase{
				{Input: "text", Category: CategorySymptom, Difficulty: "easy"},
			},
			wantErr: true,
		},
		{
			name: "duplicate id",
			cases: []GoldenCase{
				{ID: "a", Input: "text", Category: CategorySymptom, Difficulty: "easy"},
				{ID: "a", Input: "other", Category: CategoryTimeline, Difficulty: "hard"},
			},
			wantErr: true,
		},
		{
			name: "missing input",
			cases: []GoldenCase{
				{ID: "a", Category: CategorySymptom, Difficulty: "easy"},
			},
			wantErr: true,
		},
		{
			name: "invalid category",
			cases: []GoldenCase{
				{ID: "a", Input: "text", Category: "bogus", Difficulty: "easy"},
			},
			wantErr: true,
		},
		{
			name: "none category with expected conditions",
			cases: []GoldenCase{
				{ID: "a", Input: "text", Category: CategoryNone, ExpectedConditions: []string{"x"}, Difficulty: "easy"},
			},
			wantErr: true,
		},
		{
			name: "invalid top risk",
			cases: []GoldenCase{
				{ID: "a", Input: "text", Category: CategorySymptom, ExpectedTopRisk: "Critical", Difficulty: "easy"},
			},
			wantErr: true,
		},
		{
			name: "invalid difficulty",
			cases: []GoldenCase{
				{ID: "a", Input: "text", Category: CategorySymptom, Difficulty: "extreme"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoldenCases(tt.cases)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGoldenCases() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
