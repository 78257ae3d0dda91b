package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	"github.com/nuranest/pregnancy-triage/internal/domain/providers"
	"github.com/nuranest/pregnancy-triage/internal/domain/repositories"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/observability"
	"github.com/nuranest/pregnancy-triage/internal/triage"
	apperrors "github.com/nuranest/pregnancy-triage/pkg/errors"
)

const maxInputLength = 1000

const fallbackAnswer = "I could not generate a detailed answer right now. " +
	"Please review the risk summary below, and contact your doctor or midwife " +
	"if any symptom worries you."

const noMatchAnswer = "Based on what you have shared, no specific risk " +
	"pattern was identified. This is general information and not a substitute " +
	"for advice from your doctor or midwife."

// AssessmentService runs the rule engine over user input and assembles the
// full assessment response: risk table, generated answer, and, when nothing
// matches on the first pass, a clarification round trip.
type AssessmentService struct {
	rules             *triage.RuleSet
	generator         providers.AnswerGenerator
	cache             providers.CacheProvider
	sessions          repositories.TriageSessionRepository
	metrics           *observability.Metrics
	maxQuestions      int
	sessionTTLMinutes int
	answerCacheTTL    int
}

// NewAssessmentService creates a new assessment service. generator, cache and
// metrics may be nil; sessions is required for the clarification flow.
func NewAssessmentService(
	rules *triage.RuleSet,
	generator providers.AnswerGenerator,
	cache providers.CacheProvider,
	sessions repositories.TriageSessionRepository,
	metrics *observability.Metrics,
	maxQuestions int,
	sessionTTLMinutes int,
	answerCacheTTL int,
) *AssessmentService {
	if maxQuestions <= 0 {
		maxQuestions = 4
	}
	if sessionTTLMinutes <= 0 {
		sessionTTLMinutes = 30
	}
	if answerCacheTTL <= 0 {
		answerCacheTTL = 600
	}
	return &AssessmentService{
		rules:             rules,
		generator:         generator,
		cache:             cache,
		sessions:          sessions,
		metrics:           metrics,
		maxQuestions:      maxQuestions,
		sessionTTLMinutes: sessionTTLMinutes,
		answerCacheTTL:    answerCacheTTL,
	}
}

// Assess runs the full triage pipeline over the user's input. When no matcher
// fires at all, a clarification session is created and the response carries
// follow-up questions instead of a risk table.
func (s *AssessmentService) Assess(ctx context.Context, input string) (*entities.Assessment, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, apperrors.NewValidationError("question is required")
	}
	if len(input) > maxInputLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("question exceeds %d characters", maxInputLength))
	}

	assessment, matched := s.runMatchers(ctx, input)
	if !matched {
		return s.startClarification(ctx, input, assessment)
	}

	s.attachAnswer(ctx, input, assessment)
	return assessment, nil
}

// Clarify merges the stored original input with the user's answers and re-runs
// the matchers exactly once. The session is deleted regardless of outcome.
func (s *AssessmentService) Clarify(ctx context.Context, sessionID string, answers map[string]string) (*entities.Assessment, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, apperrors.NewValidationError("session_id is required")
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if time.Since(session.CreatedAt) > time.Duration(s.sessionTTLMinutes)*time.Minute {
		if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil {
			observability.LoggerFromContext(ctx).Warn().Err(delErr).
				Str("session_id", sessionID).
				Msg("failed to delete expired triage session")
		}
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("triage session %s has expired", sessionID))
	}

	merged := session.OriginalInput
	for _, key := range session.PendingQuestions {
		if answer := strings.TrimSpace(answers[key]); answer != "" {
			merged += " " + answer
		}
	}
	merged = truncateInput(merged, maxInputLength)

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).
			Str("session_id", sessionID).
			Msg("failed to delete triage session")
	}

	assessment, matched := s.runMatchers(ctx, merged)
	if !matched {
		assessment.Answer = noMatchAnswer
		finalize(assessment)
		return assessment, nil
	}

	s.attachAnswer(ctx, merged, assessment)
	return assessment, nil
}

// Questions returns the follow-up question table.
func (s *AssessmentService) Questions(ctx context.Context) []entities.TriageQuestion {
	return s.rules.Questions()
}

// DeleteExpiredSessions removes clarification sessions past their TTL. Meant
// to be called periodically from a background goroutine.
func (s *AssessmentService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.sessionTTLMinutes)
}

// runMatchers executes the three matchers over the input. A panic in any one
// matcher is logged and treated as an empty result so the others still count.
func (s *AssessmentService) runMatchers(ctx context.Context, input string) (*entities.Assessment, bool) {
	start := time.Now()

	classifications := s.safeMatch(ctx, "symptom", func() []entities.MatchEntry {
		return s.rules.ClassifySymptoms(input)
	})
	combinations := s.safeMatch(ctx, "combination", func() []entities.MatchEntry {
		return s.rules.InferCombinations(input)
	})

	var timelineResults []entities.MatchEntry
	if week, ok := triage.ExtractWeek(input); ok {
		timelineResults = s.safeMatch(ctx, "timeline", func() []entities.MatchEntry {
			return s.rules.CheckTimeline(week, input)
		})
	}

	if s.metrics != nil {
		observability.RecordRuleMatch(ctx, s.metrics, string(entities.SourceSymptom), len(classifications))
		observability.RecordRuleMatch(ctx, s.metrics, string(entities.SourceCombination), len(combinations))
		observability.RecordRuleMatch(ctx, s.metrics, string(entities.SourceTimeline), len(timelineResults))
	}

	table := triage.Summarize(classifications, combinations, timelineResults)

	assessment := &entities.Assessment{
		Classifications:    classifications,
		CombinationResults: combinations,
		TimelineResults:    timelineResults,
		RiskTable:          table.Entries,
		MarkdownSummary:    table.Markdown,
		ConfidenceScore:    0.9,
		ProcessingTime:     time.Since(start).Seconds(),
		Timestamp:          time.Now().UTC(),
	}

	return assessment, len(table.Entries) > 0
}

func (s *AssessmentService) safeMatch(ctx context.Context, source string, fn func() []entities.MatchEntry) (entries []entities.MatchEntry) {
	defer func() {
		if r := recover(); r != nil {
			observability.LoggerFromContext(ctx).Error().
				Str("matcher", source).
				Interface("panic", r).
				Msg("matcher panicked, treating as no match")
			entries = nil
		}
	}()
	return fn()
}

// startClarification persists a session and selects follow-up questions whose
// topic the input has not already covered.
func (s *AssessmentService) startClarification(ctx context.Context, input string, assessment *entities.Assessment) (*entities.Assessment, error) {
	lowered := strings.ToLower(input)

	questions := []entities.TriageQuestion{}
	keys := []string{}
	for _, q := range s.rules.Questions() {
		if strings.Contains(lowered, strings.ToLower(q.Key)) {
			continue
		}
		questions = append(questions, q)
		keys = append(keys, q.Key)
		if len(questions) >= s.maxQuestions {
			break
		}
	}

	if len(questions) == 0 {
		assessment.Answer = noMatchAnswer
		finalize(assessment)
		return assessment, nil
	}

	session := &entities.TriageSession{
		ID:               uuid.New().String(),
		OriginalInput:    input,
		PendingQuestions: keys,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	assessment.NeedsClarification = true
	assessment.SessionID = session.ID
	assessment.Questions = questions
	finalize(assessment)
	return assessment, nil
}

// attachAnswer generates or retrieves the natural-language answer. Generation
// failures never fail the assessment: the risk table stands on its own.
func (s *AssessmentService) attachAnswer(ctx context.Context, input string, assessment *entities.Assessment) {
	logger := observability.LoggerFromContext(ctx)

	cacheKey := answerCacheKey(input)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			var answer providers.GeneratedAnswer
			if err := json.Unmarshal(cached, &answer); err == nil {
				if s.metrics != nil {
					observability.RecordCacheHit(ctx, s.metrics, cacheKey)
				}
				assessment.Answer = answer.Text
				assessment.Sources = answer.Sources
				finalize(assessment)
				return
			}
		}
		if s.metrics != nil {
			observability.RecordCacheMiss(ctx, s.metrics, cacheKey)
		}
	}

	if s.generator == nil {
		assessment.Answer = fallbackAnswer
		finalize(assessment)
		return
	}

	answer, err := s.generator.GenerateAnswer(ctx, input)
	if err != nil {
		logger.Warn().Err(err).Msg("answer generation failed, using fallback")
		assessment.Answer = fallbackAnswer
		finalize(assessment)
		return
	}

	assessment.Answer = answer.Text
	assessment.Sources = answer.Sources

	if s.cache != nil {
		if payload, err := json.Marshal(answer); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.answerCacheTTL); err != nil {
				logger.Warn().Err(err).Msg("failed to cache generated answer")
			}
		}
	}

	finalize(assessment)
}

// finalize stamps the processing time covering answer generation as well.
func finalize(assessment *entities.Assessment) {
	assessment.ProcessingTime = time.Since(assessment.Timestamp).Seconds() + assessment.ProcessingTime
}

// truncateInput caps input at max bytes without splitting a rune.
func truncateInput(input string, max int) string {
	if len(input) <= max {
		return input
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(input[cut]) {
		cut--
	}
	return input[:cut]
}

func answerCacheKey(input string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(input))))
	return "answer:" + hex.EncodeToString(sum[:])
}
