package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nuranest/pregnancy-triage/internal/adapters/cache"
	"github.com/nuranest/pregnancy-triage/internal/adapters/database"
	"github.com/nuranest/pregnancy-triage/internal/adapters/search"
	"github.com/nuranest/pregnancy-triage/internal/api/handlers"
	"github.com/nuranest/pregnancy-triage/internal/api/middleware"
	"github.com/nuranest/pregnancy-triage/internal/api/routes"
	"github.com/nuranest/pregnancy-triage/internal/application/services"
	"github.com/nuranest/pregnancy-triage/internal/domain/providers"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/clients/openai"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/clients/postgres"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/clients/redis"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/clients/typesense"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/observability"
	"github.com/nuranest/pregnancy-triage/internal/triage"
	"github.com/nuranest/pregnancy-triage/pkg/config"
)

const sessionCleanupInterval = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Load rule tables. A broken table is fatal: the service must never
	// triage with partial rules.
	ruleSet, err := triage.Load(cfg.Triage.RulesDir)
	if err != nil {
		log.Fatalf("Failed to load triage rule tables: %v", err)
	}
	log.Println("Triage rule tables loaded successfully")

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
		typesenseClient = nil
	} else {
		log.Println("Typesense client initialized successfully")
	}

	// Initialize adapters

	sessionAdapter := database.NewSessionAdapter(pgClient)

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var documentSearcher providers.DocumentSearcher
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)

		// Ensure schema exists
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}

		documentSearcher = adapter
	}

	var answerGenerator providers.AnswerGenerator
	if cfg.OpenAI.APIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set; answer generation disabled")
	} else {
		openaiClient, err := openai.NewClient(&cfg.OpenAI, documentSearcher, cfg.Triage.SearchK)
		if err != nil {
			log.Printf("Warning: Failed to initialize OpenAI client: %v", err)
		} else {
			answerGenerator = openaiClient
		}
	}

	// Initialize services

	assessmentService := services.NewAssessmentService(
		ruleSet,
		answerGenerator,
		cacheProvider,
		sessionAdapter,
		metrics,
		cfg.Triage.MaxQuestions,
		cfg.Triage.SessionTTLMinutes,
		cfg.Triage.AnswerCacheTTL,
	)

	// Clean up expired clarification sessions in the background
	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := assessmentService.DeleteExpiredSessions(ctx)
				if err != nil {
					log.Printf("Warning: Failed to delete expired sessions: %v", err)
				} else if deleted > 0 {
					log.Printf("Deleted %d expired triage sessions", deleted)
				}
			}
		}
	}()

	// Initialize handlers

	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		assessmentHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
