package triage

import (
	"testing"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestCheckTimeline_WeekInsideWindow(t *testing.T) {
	rs := newTestRuleSet(t)

	findings := rs.CheckTimeline(6, "severe abdominal pain since this morning")

	assert.Len(t, findings, 1)
	assert.Equal(t, "Ectopic Pregnancy", findings[0].Condition)
	assert.Equal(t, entities.SourceTimeline, findings[0].Source)
	assert.Equal(t, []string{"severe abdominal pain"}, findings[0].MatchedSymptoms)
	if assert.NotNil(t, findings[0].Week) {
		assert.Equal(t, 6, *findings[0].Week)
	}
}

func TestCheckTimeline_OneEntryPerMatchingPhrase(t *testing.T) {
	rs := newTestRuleSet(t)

	// Each phrase of an applying rule yields its own entry; the rule is not
	// conjunctive.
	findings := rs.CheckTimeline(6, "severe abdominal pain and dizziness")

	assert.Len(t, findings, 2)
	assert.Equal(t, []string{"severe abdominal pain"}, findings[0].MatchedSymptoms)
	assert.Equal(t, []string{"dizziness"}, findings[1].MatchedSymptoms)
}

func TestCheckTimeline_WeekOutsideWindow(t *testing.T) {
	rs := newTestRuleSet(t)

	findings := rs.CheckTimeline(20, "severe abdominal pain and dizziness")

	assert.Empty(t, findings)
}

func TestCheckTimeline_InclusiveBounds(t *testing.T) {
	rs := newTestRuleSet(t)

	assert.Len(t, rs.CheckTimeline(4, "shoulder pain"), 1)
	assert.Len(t, rs.CheckTimeline(8, "shoulder pain"), 1)
	assert.Empty(t, rs.CheckTimeline(3, "shoulder pain"))
	assert.Empty(t, rs.CheckTimeline(9, "shoulder pain"))
}

func TestCheckTimeline_NoSymptomInText(t *testing.T) {
	rs := newTestRuleSet(t)

	assert.Empty(t, rs.CheckTimeline(6, "feeling great today"))
}
