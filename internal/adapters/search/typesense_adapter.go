package search

import (
	"context"
	"fmt"
	"time"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	"github.com/nuranest/pregnancy-triage/internal/domain/providers"
	tsclient "github.com/nuranest/pregnancy-triage/internal/infrastructure/clients/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

// TypesenseAdapter implements reference document retrieval using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements DocumentSearcher
var _ providers.DocumentSearcher = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the documents collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	return a.client.InitSchema(ctx)
}

// Index indexes a reference document
func (a *TypesenseAdapter) Index(ctx context.Context, doc *entities.Document) error {
	document := map[string]interface{}{
		"id":         doc.ID,
		"title":      doc.Title,
		"text":       doc.Text,
		"source":     doc.Source,
		"created_at": time.Now().Unix(),
	}

	if err := a.client.IndexDocument(ctx, document); err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	return nil
}

// Delete removes a document from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.DocumentsCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete document from index: %w", err)
	}
	return nil
}

// Search returns the k documents most relevant to the query
func (a *TypesenseAdapter) Search(ctx context.Context, query string, k int) ([]entities.Document, error) {
	if k <= 0 {
		k = 3
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("title,text"),
		PerPage: pointer.Int(k),
	}

	result, err := a.client.Client().Collection(tsclient.DocumentsCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	documents := []entities.Document{}
	if result.Hits == nil {
		return documents, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		doc := *hit.Document

		documents = append(documents, entities.Document{
			ID:     stringField(doc, "id"),
			Title:  stringField(doc, "title"),
			Text:   stringField(doc, "text"),
			Source: stringField(doc, "source"),
		})
	}

	return documents, nil
}

func stringField(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}
