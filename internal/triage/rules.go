package triage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	apperrors "github.com/nuranest/pregnancy-triage/pkg/errors"
)

const (
	symptomRulesFile     = "symptom_rules.json"
	combinationRulesFile = "combination_rules.json"
	timelineRulesFile    = "timeline_rules.json"
	triageQuestionsFile  = "triage_questions.json"
)

// RuleSet holds the static triage rule tables. It is built once at startup
// and read-only afterwards, so its matchers are safe for concurrent use.
type RuleSet struct {
	symptoms     []entities.SymptomRule
	combinations []entities.CombinationRule
	timeline     []entities.TimelineRule
	questions    []entities.TriageQuestion
}

// Load reads the rule tables from JSON files in dir and validates them.
// Any table defect is fatal: the service must not start with a broken table.
func Load(dir string) (*RuleSet, error) {
	var (
		symptoms     []entities.SymptomRule
		combinations []entities.CombinationRule
		timeline     []entities.TimelineRule
		questions    []entities.TriageQuestion
	)

	if err := readJSONFile(filepath.Join(dir, symptomRulesFile), &symptoms); err != nil {
		return nil, apperrors.NewRuleTableError("failed to load symptom rules", err)
	}
	if err := readJSONFile(filepath.Join(dir, combinationRulesFile), &combinations); err != nil {
		return nil, apperrors.NewRuleTableError("failed to load combination rules", err)
	}
	if err := readJSONFile(filepath.Join(dir, timelineRulesFile), &timeline); err != nil {
		return nil, apperrors.NewRuleTableError("failed to load timeline rules", err)
	}
	if err := readJSONFile(filepath.Join(dir, triageQuestionsFile), &questions); err != nil {
		return nil, apperrors.NewRuleTableError("failed to load triage questions", err)
	}

	return NewRuleSet(symptoms, combinations, timeline, questions)
}

// NewRuleSet builds a rule set from in-memory tables. Phrases are
// canonicalized to lower case; table order is preserved.
func NewRuleSet(
	symptoms []entities.SymptomRule,
	combinations []entities.CombinationRule,
	timeline []entities.TimelineRule,
	questions []entities.TriageQuestion,
) (*RuleSet, error) {
	rs := &RuleSet{
		symptoms:     normalizeSymptomRules(symptoms),
		combinations: normalizeCombinationRules(combinations),
		timeline:     normalizeTimelineRules(timeline),
		questions:    questions,
	}
	if err := rs.validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// Questions returns the follow-up question table in declaration order.
func (rs *RuleSet) Questions() []entities.TriageQuestion {
	return rs.questions
}

func (rs *RuleSet) validate() error {
	seen := make(map[string]struct{}, len(rs.symptoms))
	for _, rule := range rs.symptoms {
		if rule.Phrase == "" {
			return apperrors.NewRuleTableError("symptom rule with empty phrase", nil)
		}
		if _, dup := seen[rule.Phrase]; dup {
			return apperrors.NewRuleTableError(fmt.Sprintf("duplicate symptom phrase %q", rule.Phrase), nil)
		}
		seen[rule.Phrase] = struct{}{}
		if !rule.Risk.IsValid() {
			return apperrors.NewRuleTableError(fmt.Sprintf("symptom rule %q has unknown risk %q", rule.Phrase, rule.Risk), nil)
		}
	}

	for i, rule := range rs.combinations {
		if len(rule.Symptoms) == 0 {
			return apperrors.NewRuleTableError(fmt.Sprintf("combination rule %d (%s) has no symptoms", i, rule.Condition), nil)
		}
		if !rule.Risk.IsValid() {
			return apperrors.NewRuleTableError(fmt.Sprintf("combination rule %q has unknown risk %q", rule.Condition, rule.Risk), nil)
		}
	}

	for i, rule := range rs.timeline {
		if rule.MinWeek > rule.MaxWeek {
			return apperrors.NewRuleTableError(fmt.Sprintf("timeline rule %q has inverted week window [%d, %d]", rule.Condition, rule.MinWeek, rule.MaxWeek), nil)
		}
		if rule.MinWeek < 0 {
			return apperrors.NewRuleTableError(fmt.Sprintf("timeline rule %q has negative min_week", rule.Condition), nil)
		}
		if len(rule.Symptoms) == 0 {
			return apperrors.NewRuleTableError(fmt.Sprintf("timeline rule %d (%s) has no symptoms", i, rule.Condition), nil)
		}
		if !rule.Risk.IsValid() {
			return apperrors.NewRuleTableError(fmt.Sprintf("timeline rule %q has unknown risk %q", rule.Condition, rule.Risk), nil)
		}
	}

	for _, q := range rs.questions {
		if q.Key == "" || q.Question == "" {
			return apperrors.NewRuleTableError("triage question with empty key or text", nil)
		}
	}

	return nil
}

func normalizeSymptomRules(rules []entities.SymptomRule) []entities.SymptomRule {
	out := make([]entities.SymptomRule, len(rules))
	for i, rule := range rules {
		rule.Phrase = strings.ToLower(strings.TrimSpace(rule.Phrase))
		out[i] = rule
	}
	return out
}

func normalizeCombinationRules(rules []entities.CombinationRule) []entities.CombinationRule {
	out := make([]entities.CombinationRule, 0, len(rules))
	seen := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		symptoms := make([]string, len(rule.Symptoms))
		for i, s := range rule.Symptoms {
			symptoms[i] = strings.ToLower(strings.TrimSpace(s))
		}
		rule.Symptoms = symptoms

		// The source tables carry a few literal repeats; keep the first.
		key := rule.Condition + "|" + string(rule.Risk) + "|" + strings.Join(symptoms, ",")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rule)
	}
	return out
}

func normalizeTimelineRules(rules []entities.TimelineRule) []entities.TimelineRule {
	out := make([]entities.TimelineRule, len(rules))
	for i, rule := range rules {
		symptoms := make([]string, len(rule.Symptoms))
		for j, s := range rule.Symptoms {
			symptoms[j] = strings.ToLower(strings.TrimSpace(s))
		}
		rule.Symptoms = symptoms
		out[i] = rule
	}
	return out
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", filepath.Base(path), err)
	}
	return nil
}
