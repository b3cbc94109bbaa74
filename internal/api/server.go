// Package api exposes the analysis pipeline and the parsing engine over
// HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/proplens/proplens/internal/config"
	"github.com/proplens/proplens/internal/genai"
	"github.com/proplens/proplens/internal/pipeline"
)

// Server is the proplens HTTP API server.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	provider     *genai.Client
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, provider *genai.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		provider:     provider,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/analyses", s.handleCreateAnalysis)
		r.Get("/api/analyses/{jobID}", s.handleAnalysisStatus)
		r.Post("/api/reports/parse", s.handleParseReport)
		r.Get("/api/stats/llm", s.handleProviderStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
