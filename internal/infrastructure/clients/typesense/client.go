package typesense

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nuranest/pregnancy-triage/pkg/config"
	"github.com/nuranest/pregnancy-triage/pkg/retry"
	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

const (
	DocumentsCollection = "pregnancy_documents"
)

// Client represents a Typesense client
type Client struct {
	client *typesense.Client
}

// NewClient creates a new Typesense client with exponential backoff retry
func NewClient(cfg *config.TypesenseConfig) (*Client, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)

	// Test connection with retry
	retryConfig := retry.DefaultConfig()
	err := retry.DoWithLog(
		context.Background(),
		retryConfig,
		"Typesense",
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, err := client.Health(ctx, 2*time.Second)
			return err
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Printf("Typesense connection attempt %d failed: %v. Retrying in %v...", attempt, err, nextDelay)
		},
	)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	log.Println("Successfully connected to Typesense")
	return &Client{client: client}, nil
}

// Client returns the underlying Typesense client
func (c *Client) Client() *typesense.Client {
	return c.client
}

// InitSchema ensures the pregnancy documents collection exists
func (c *Client) InitSchema(ctx context.Context) error {
	collections, err := c.client.Collections().Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve collections: %w", err)
	}

	for _, col := range collections {
		if col.Name == DocumentsCollection {
			log.Printf("Typesense collection %q already exists", DocumentsCollection)
			return nil
		}
	}

	schema := &api.CollectionSchema{
		Name: DocumentsCollection,
		Fields: []api.Field{
			{
				Name: "id",
				Type: "string",
			},
			{
				Name: "title",
				Type: "string",
			},
			{
				Name: "text",
				Type: "string",
			},
			{
				Name:  "source",
				Type:  "string",
				Facet: pointer.True(),
			},
			{
				Name: "created_at",
				Type: "int64",
			},
		},
		DefaultSortingField: pointer.String("created_at"),
	}

	_, err = c.client.Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("Created Typesense collection %q", DocumentsCollection)
	return nil
}

// IndexDocument indexes a reference document
func (c *Client) IndexDocument(ctx context.Context, document map[string]interface{}) error {
	_, err := c.client.Collection(DocumentsCollection).Documents().Upsert(ctx, document)
	return err
}
