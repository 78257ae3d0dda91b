package main

import (
	"context"
	"log"
	"time"

	"github.com/nuranest/pregnancy-triage/internal/infrastructure/clients/postgres"
	"github.com/nuranest/pregnancy-triage/pkg/config"
)

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS triage_sessions (
	id TEXT PRIMARY KEY,
	original_input TEXT NOT NULL,
	pending_questions TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_triage_sessions_created_at ON triage_sessions (created_at);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := pgClient.DB().ExecContext(ctx, createSessionsTable); err != nil {
		log.Fatalf("Failed to create triage_sessions table: %v", err)
	}

	log.Println("Migration complete")
}
