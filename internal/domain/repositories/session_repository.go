package repositories

import (
	"context"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

// TriageSessionRepository persists clarification sessions across the ask /
// clarify round trip. Sessions are short-lived: created when no rule fires on
// the initial input and deleted once the merged text has been re-assessed.
type TriageSessionRepository interface {
	Create(ctx context.Context, session *entities.TriageSession) error
	GetByID(ctx context.Context, id string) (*entities.TriageSession, error)
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions older than ttlMinutes, returning the
	// number removed.
	DeleteExpired(ctx context.Context, ttlMinutes int) (int64, error)
}
