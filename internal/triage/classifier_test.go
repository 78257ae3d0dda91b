package triage

import (
	"testing"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

func newTestRuleSet(t *testing.T) *RuleSet {
	t.Helper()
	rs, err := NewRuleSet(
		[]entities.SymptomRule{
			{Phrase: "mild nausea", Risk: entities.RiskLow, Condition: "Normal 1st trimester symptom", Action: "Self-monitor"},
			{Phrase: "heavy bleeding", Risk: entities.RiskHigh, Condition: "Miscarriage or placental abruption", Action: "Immediate OB or ER visit"},
			{Phrase: "blurry vision", Risk: entities.RiskHigh, Condition: "Preeclampsia", Action: "Immediate evaluation"},
			{Phrase: "thirst", Risk: entities.RiskMedium, Condition: "Possible gestational diabetes", Action: "Ask for glucose test"},
		},
		[]entities.CombinationRule{
			{Symptoms: []string{"headache", "blurry vision", "swelling"}, Condition: "Classic triad of preeclampsia", Risk: entities.RiskHigh, Action: "Immediate medical evaluation for blood pressure and protein in urine"},
			{Symptoms: []string{"light spotting", "mild cramping"}, Condition: "Implantation bleeding or normal early pregnancy symptom", Risk: entities.RiskLow, Action: "Self-monitor, contact OB if worsens"},
			{Symptoms: []string{"spotting", "fatigue", "severe cramping"}, Condition: "Possible Miscarriage", Risk: entities.RiskMediumHigh, Action: "Ultrasound recommended"},
		},
		[]entities.TimelineRule{
			{MinWeek: 4, MaxWeek: 8, Symptoms: []string{"severe abdominal pain", "shoulder pain", "dizziness"}, Condition: "Ectopic Pregnancy", Risk: entities.RiskHigh, Action: "Emergency OB-GYN evaluation"},
			{MinWeek: 28, MaxWeek: 40, Symptoms: []string{"no fetal movement"}, Condition: "Stillbirth or Fetal Distress", Risk: entities.RiskHigh, Action: "Immediate fetal heart check"},
		},
		[]entities.TriageQuestion{
			{Key: "bleeding", Question: "Are you currently experiencing any unusual bleeding or discharge?"},
			{Key: "fetal_movement", Question: "How would you describe your baby’s movements today?"},
		},
	)
	if err != nil {
		t.Fatalf("failed to build rule set: %v", err)
	}
	return rs
}

func TestClassifySymptoms_SingleMatch(t *testing.T) {
	rs := newTestRuleSet(t)

	findings := rs.ClassifySymptoms("I have had mild nausea since yesterday")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].MatchedSymptoms[0] != "mild nausea" {
		t.Errorf("expected matched phrase 'mild nausea', got %q", findings[0].MatchedSymptoms[0])
	}
	if findings[0].Source != entities.SourceSymptom {
		t.Errorf("expected symptom source, got %s", findings[0].Source)
	}
	if findings[0].Risk != entities.RiskLow {
		t.Errorf("expected Low risk, got %s", findings[0].Risk)
	}
}

func TestClassifySymptoms_CaseInsensitive(t *testing.T) {
	rs := newTestRuleSet(t)

	findings := rs.ClassifySymptoms("HEAVY BLEEDING this morning")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Condition != "Miscarriage or placental abruption" {
		t.Errorf("unexpected condition %q", findings[0].Condition)
	}
}

func TestClassifySymptoms_DeclarationOrder(t *testing.T) {
	rs := newTestRuleSet(t)

	// Output follows table order, not risk order: thirst (Medium) is declared
	// after blurry vision (High).
	findings := rs.ClassifySymptoms("blurry vision and constant thirst")
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].MatchedSymptoms[0] != "blurry vision" || findings[1].MatchedSymptoms[0] != "thirst" {
		t.Errorf("expected table order [blurry vision, thirst], got [%s, %s]",
			findings[0].MatchedSymptoms[0], findings[1].MatchedSymptoms[0])
	}
}

func TestClassifySymptoms_NoMatch(t *testing.T) {
	rs := newTestRuleSet(t)

	if findings := rs.ClassifySymptoms("what foods should I avoid?"); len(findings) != 0 {
		t.Fatalf("expected no findings, got %d", len(findings))
	}
	if findings := rs.ClassifySymptoms(""); len(findings) != 0 {
		t.Fatalf("expected no findings for empty input, got %d", len(findings))
	}
}

func TestClassifySymptoms_PartialPhraseDoesNotMatch(t *testing.T) {
	rs := newTestRuleSet(t)

	// "nausea" alone is not the listed phrase "mild nausea".
	if findings := rs.ClassifySymptoms("some nausea in the morning"); len(findings) != 0 {
		t.Fatalf("expected no findings, got %d", len(findings))
	}
}
