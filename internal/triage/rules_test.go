package triage

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func rulesConfigDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "config")
}

func TestLoad_ShippedTables(t *testing.T) {
	rs, err := Load(rulesConfigDir())
	assert.NoError(t, err)

	assert.Len(t, rs.symptoms, 12)
	assert.Len(t, rs.combinations, 19)
	assert.Len(t, rs.timeline, 5)
	assert.Len(t, rs.Questions(), 6)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load("testdata/does-not-exist")
	assert.Error(t, err)
}

func TestNewRuleSet_DuplicatePhraseRejected(t *testing.T) {
	_, err := NewRuleSet(
		[]entities.SymptomRule{
			{Phrase: "fever", Risk: entities.RiskHigh, Condition: "a", Action: "x"},
			{Phrase: "Fever", Risk: entities.RiskLow, Condition: "b", Action: "y"},
		},
		nil, nil, nil,
	)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate symptom phrase")
}

func TestNewRuleSet_InvertedWeekWindowRejected(t *testing.T) {
	_, err := NewRuleSet(nil, nil,
		[]entities.TimelineRule{
			{MinWeek: 12, MaxWeek: 4, Symptoms: []string{"spotting"}, Condition: "c", Risk: entities.RiskHigh, Action: "x"},
		},
		nil,
	)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "inverted week window")
}

func TestNewRuleSet_UnknownRiskRejected(t *testing.T) {
	_, err := NewRuleSet(
		[]entities.SymptomRule{
			{Phrase: "fever", Risk: "Critical", Condition: "a", Action: "x"},
		},
		nil, nil, nil,
	)
	assert.Error(t, err)
}

func TestNewRuleSet_EmptyCombinationRejected(t *testing.T) {
	_, err := NewRuleSet(nil,
		[]entities.CombinationRule{
			{Symptoms: nil, Condition: "c", Risk: entities.RiskHigh, Action: "x"},
		},
		nil, nil,
	)
	assert.Error(t, err)
}

func TestNewRuleSet_LowercasesPhrases(t *testing.T) {
	rs, err := NewRuleSet(
		[]entities.SymptomRule{
			{Phrase: "Heavy Bleeding", Risk: entities.RiskHigh, Condition: "c", Action: "x"},
		},
		nil, nil, nil,
	)
	assert.NoError(t, err)

	findings := rs.ClassifySymptoms("heavy bleeding overnight")
	assert.Len(t, findings, 1)
	assert.Equal(t, "heavy bleeding", findings[0].MatchedSymptoms[0])
}

func TestNewRuleSet_CollapsesRepeatedCombinationRules(t *testing.T) {
	rule := entities.CombinationRule{
		Symptoms:  []string{"contractions", "pelvic pressure"},
		Condition: "Preterm Labor",
		Risk:      entities.RiskMediumHigh,
		Action:    "Hospital evaluation",
	}
	rs, err := NewRuleSet(nil, []entities.CombinationRule{rule, rule}, nil, nil)
	assert.NoError(t, err)

	findings := rs.InferCombinations("contractions and pelvic pressure")
	assert.Len(t, findings, 1)
}
