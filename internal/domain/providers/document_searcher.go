package providers

import (
	"context"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

// DocumentSearcher retrieves reference document snippets relevant to a query.
type DocumentSearcher interface {
	Search(ctx context.Context, query string, k int) ([]entities.Document, error)
}
