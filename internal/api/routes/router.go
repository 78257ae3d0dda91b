package routes

import (
	"net/http"

	"github.com/nuranest/pregnancy-triage/internal/api/handlers"
	"github.com/nuranest/pregnancy-triage/internal/api/middleware"
	"github.com/nuranest/pregnancy-triage/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	assessmentHandler *handlers.AssessmentHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	assessmentHandler *handlers.AssessmentHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		assessmentHandler: assessmentHandler,
		cacheMiddleware:   cacheMiddleware,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Triage endpoints
	r.mux.HandleFunc("POST /api/v1/ai/ask", r.assessmentHandler.Ask)
	r.mux.HandleFunc("POST /api/v1/ai/clarify", r.assessmentHandler.Clarify)
	r.mux.HandleFunc("GET /api/v1/ai/questions", r.assessmentHandler.Questions)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	handler = middleware.Compression(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
