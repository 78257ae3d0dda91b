package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	apperrors "github.com/nuranest/pregnancy-triage/pkg/errors"
)

// AssessmentService defines the triage operations used by the handler.
type AssessmentService interface {
	Assess(ctx context.Context, input string) (*entities.Assessment, error)
	Clarify(ctx context.Context, sessionID string, answers map[string]string) (*entities.Assessment, error)
	Questions(ctx context.Context) []entities.TriageQuestion
}

// AssessmentHandler handles triage ask and clarify requests.
type AssessmentHandler struct {
	service AssessmentService
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(service AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

type askRequest struct {
	Question string `json:"question"`
}

type clarifyRequest struct {
	SessionID string            `json:"session_id"`
	Answers   map[string]string `json:"answers"`
}

// Ask handles POST /api/v1/ai/ask
func (h *AssessmentHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var payload askRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.Question) == "" {
		respondWithError(w, http.StatusBadRequest, "question is required")
		return
	}

	assessment, err := h.service.Assess(r.Context(), payload.Question)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, assessment)
}

// Clarify handles POST /api/v1/ai/clarify
func (h *AssessmentHandler) Clarify(w http.ResponseWriter, r *http.Request) {
	var payload clarifyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.SessionID) == "" {
		respondWithError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	assessment, err := h.service.Clarify(r.Context(), payload.SessionID, payload.Answers)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, assessment)
}

// Questions handles GET /api/v1/ai/questions
func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.service.Questions(r.Context()),
	})
}

func respondWithAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
