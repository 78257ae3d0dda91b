package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/nuranest/pregnancy-triage/internal/adapters/search"
	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/clients/typesense"
	"github.com/nuranest/pregnancy-triage/pkg/config"
)

func main() {
	var file string
	var reset bool
	flag.StringVar(&file, "file", "data/documents.json", "JSON file with reference documents to index")
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collection before reindexing")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := indexOnce(ctx, file, reset); err != nil {
		log.Fatalf("Indexing failed: %v", err)
	}
}

func indexOnce(ctx context.Context, file string, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	if reset {
		if _, err := tsClient.Client().Collection(typesense.DocumentsCollection).Delete(ctx); err != nil {
			log.Printf("Warning: Failed to delete collection (may not exist): %v", err)
		}
	}

	adapter := search.NewTypesenseAdapter(tsClient)
	if err := adapter.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}

	documents, err := loadDocuments(file)
	if err != nil {
		return err
	}

	indexed := 0
	for i := range documents {
		doc := &documents[i]
		if doc.ID == "" {
			doc.ID = "doc-" + strconv.Itoa(i+1)
		}
		if err := adapter.Index(ctx, doc); err != nil {
			log.Printf("Warning: Failed to index document %s: %v", doc.ID, err)
			continue
		}
		indexed++
	}

	log.Printf("Indexed %d/%d documents", indexed, len(documents))
	return nil
}

func loadDocuments(file string) ([]entities.Document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents file: %w", err)
	}

	var documents []entities.Document
	if err := json.Unmarshal(data, &documents); err != nil {
		return nil, fmt.Errorf("failed to parse documents file: %w", err)
	}
	return documents, nil
}
