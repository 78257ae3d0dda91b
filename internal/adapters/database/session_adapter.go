package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	"github.com/nuranest/pregnancy-triage/internal/domain/repositories"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/clients/postgres"
	apperrors "github.com/nuranest/pregnancy-triage/pkg/errors"
)

// SessionAdapter implements triage session persistence in Postgres.
type SessionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSessionAdapter creates a new triage session adapter.
func NewSessionAdapter(client *postgres.Client) repositories.TriageSessionRepository {
	return &SessionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a clarification session.
func (a *SessionAdapter) Create(ctx context.Context, session *entities.TriageSession) error {
	if session == nil {
		return apperrors.NewInternalError("session is nil", fmt.Errorf("session is nil"))
	}

	record := goqu.Record{
		"id":                session.ID,
		"original_input":    session.OriginalInput,
		"pending_questions": pq.Array(session.PendingQuestions),
		"created_at":        session.CreatedAt,
	}

	query, args, err := a.db.Insert("triage_sessions").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build session insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create triage session", err)
	}

	return nil
}

// GetByID fetches a clarification session by its ID.
func (a *SessionAdapter) GetByID(ctx context.Context, id string) (*entities.TriageSession, error) {
	query, args, err := a.db.From("triage_sessions").
		Select("id", "original_input", "pending_questions", "created_at").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build session select query", err)
	}

	var session entities.TriageSession
	row := a.client.DB().QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&session.ID,
		&session.OriginalInput,
		pq.Array(&session.PendingQuestions),
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("triage session %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to fetch triage session", err)
	}

	return &session, nil
}

// Delete removes a clarification session.
func (a *SessionAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("triage_sessions").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build session delete query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to delete triage session", err)
	}

	return nil
}

// DeleteExpired removes sessions older than ttlMinutes.
func (a *SessionAdapter) DeleteExpired(ctx context.Context, ttlMinutes int) (int64, error) {
	query, args, err := a.db.Delete("triage_sessions").
		Where(goqu.L("created_at < NOW() - (? * INTERVAL '1 minute')", ttlMinutes)).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build expired session delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to delete expired triage sessions", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return deleted, nil
}
