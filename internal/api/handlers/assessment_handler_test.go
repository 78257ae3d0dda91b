package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nuranest/pregnancy-triage/internal/api/handlers"
	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	apperrors "github.com/nuranest/pregnancy-triage/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssessmentService struct {
	assessResult  *entities.Assessment
	assessErr     error
	clarifyResult *entities.Assessment
	clarifyErr    error

	lastInput     string
	lastSessionID string
	lastAnswers   map[string]string
}

func (s *stubAssessmentService) Assess(ctx context.Context, input string) (*entities.Assessment, error) {
	s.lastInput = input
	return s.assessResult, s.assessErr
}

func (s *stubAssessmentService) Clarify(ctx context.Context, sessionID string, answers map[string]string) (*entities.Assessment, error) {
	s.lastSessionID = sessionID
	s.lastAnswers = answers
	return s.clarifyResult, s.clarifyErr
}

func (s *stubAssessmentService) Questions(ctx context.Context) []entities.TriageQuestion {
	return []entities.TriageQuestion{
		{Key: "bleeding", Question: "Are you experiencing any bleeding?"},
		{Key: "pain", Question: "Do you have any pain, and where?"},
	}
}

func TestAssessmentHandler_Ask_Success(t *testing.T) {
	service := &stubAssessmentService{
		assessResult: &entities.Assessment{
			Answer: "Seek care.",
			RiskTable: []entities.MatchEntry{
				{Source: entities.SourceSymptom, Risk: entities.RiskHigh, Condition: "Possible miscarriage"},
			},
		},
	}
	handler := handlers.NewAssessmentHandler(service)

	body := `{"question":"I have heavy bleeding"}`
	req := httptest.NewRequest("POST", "/api/v1/ai/ask", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "I have heavy bleeding", service.lastInput)

	var response entities.Assessment
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, "Seek care.", response.Answer)
	require.Len(t, response.RiskTable, 1)
	assert.Equal(t, entities.RiskHigh, response.RiskTable[0].Risk)
}

func TestAssessmentHandler_Ask_Clarification(t *testing.T) {
	service := &stubAssessmentService{
		assessResult: &entities.Assessment{
			NeedsClarification: true,
			SessionID:          "abc-123",
			Questions: []entities.TriageQuestion{
				{Key: "bleeding", Question: "Are you experiencing any bleeding?"},
			},
		},
	}
	handler := handlers.NewAssessmentHandler(service)

	req := httptest.NewRequest("POST", "/api/v1/ai/ask", strings.NewReader(`{"question":"I feel off"}`))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response entities.Assessment
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.True(t, response.NeedsClarification)
	assert.Equal(t, "abc-123", response.SessionID)
	require.Len(t, response.Questions, 1)
}

func TestAssessmentHandler_Ask_EmptyQuestion(t *testing.T) {
	handler := handlers.NewAssessmentHandler(&stubAssessmentService{})

	req := httptest.NewRequest("POST", "/api/v1/ai/ask", strings.NewReader(`{"question":"  "}`))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssessmentHandler_Ask_InvalidPayload(t *testing.T) {
	handler := handlers.NewAssessmentHandler(&stubAssessmentService{})

	req := httptest.NewRequest("POST", "/api/v1/ai/ask", strings.NewReader(`{bad json`))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssessmentHandler_Ask_ValidationError(t *testing.T) {
	service := &stubAssessmentService{
		assessErr: apperrors.NewValidationError("question exceeds 1000 characters"),
	}
	handler := handlers.NewAssessmentHandler(service)

	req := httptest.NewRequest("POST", "/api/v1/ai/ask", strings.NewReader(`{"question":"too long"}`))
	w := httptest.NewRecorder()

	handler.Ask(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	assert.Equal(t, "question exceeds 1000 characters", response["error"])
}

func TestAssessmentHandler_Clarify_Success(t *testing.T) {
	service := &stubAssessmentService{
		clarifyResult: &entities.Assessment{Answer: "merged answer"},
	}
	handler := handlers.NewAssessmentHandler(service)

	body := `{"session_id":"abc-123","answers":{"pain":"yes, shoulder pain"}}`
	req := httptest.NewRequest("POST", "/api/v1/ai/clarify", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Clarify(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", service.lastSessionID)
	assert.Equal(t, map[string]string{"pain": "yes, shoulder pain"}, service.lastAnswers)
}

func TestAssessmentHandler_Clarify_MissingSessionID(t *testing.T) {
	handler := handlers.NewAssessmentHandler(&stubAssessmentService{})

	req := httptest.NewRequest("POST", "/api/v1/ai/clarify", strings.NewReader(`{"answers":{}}`))
	w := httptest.NewRecorder()

	handler.Clarify(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssessmentHandler_Clarify_SessionNotFound(t *testing.T) {
	service := &stubAssessmentService{
		clarifyErr: apperrors.NewNotFoundError("triage session abc not found"),
	}
	handler := handlers.NewAssessmentHandler(service)

	req := httptest.NewRequest("POST", "/api/v1/ai/clarify", strings.NewReader(`{"session_id":"abc"}`))
	w := httptest.NewRecorder()

	handler.Clarify(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssessmentHandler_Questions(t *testing.T) {
	handler := handlers.NewAssessmentHandler(&stubAssessmentService{})

	req := httptest.NewRequest("GET", "/api/v1/ai/questions", nil)
	w := httptest.NewRecorder()

	handler.Questions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Questions []entities.TriageQuestion `json:"questions"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	require.Len(t, response.Questions, 2)
	assert.Equal(t, "bleeding", response.Questions[0].Key)
}

func TestAssessmentHandler_Clarify_InternalError(t *testing.T) {
	service := &stubAssessmentService{
		clarifyErr: apperrors.NewInternalError("db down", nil),
	}
	handler := handlers.NewAssessmentHandler(service)

	req := httptest.NewRequest("POST", "/api/v1/ai/clarify", strings.NewReader(`{"session_id":"abc"}`))
	w := httptest.NewRecorder()

	handler.Clarify(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
