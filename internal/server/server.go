// Package server provides the HTTP server for the pose assessment service.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ptpal/internal/exercise"
	"ptpal/internal/feedback"
	"ptpal/internal/server/api"
	"ptpal/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir  string
	Store      *store.Store
	Enhancer   feedback.Enhancer
	Thresholds exercise.Thresholds
}

// Server represents the HTTP server for the assessment service.
type Server struct {
	config Config
	router chi.Router
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	if config.Thresholds == (exercise.Thresholds{}) {
		config.Thresholds = exercise.DefaultThresholds()
	}

	s := &Server{
		config: config,
		router: chi.NewRouter(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/api/health", s.handleHealth)

	assessHandler := api.NewAssessHandler(s.config.Thresholds, s.config.Enhancer)
	s.router.Post("/api/assess", assessHandler.Assess)
	s.router.Get("/api/exercises", assessHandler.Exercises)

	liveHandler := NewLiveHandler(s.config.Thresholds)
	s.router.Get("/api/live", liveHandler.ServeHTTP)

	// Session endpoints need persistence
	if s.config.Store != nil {
		sessionsHandler := api.NewSessionsHandler(s.config.Store, s.config.Thresholds)
		s.router.Post("/api/sessions", sessionsHandler.Create)
		s.router.Post("/api/pose-data", sessionsHandler.IngestFrame)
		s.router.Get("/api/sessions/{id}/results", sessionsHandler.Results)
		s.router.Get("/api/sessions/{id}/export", sessionsHandler.Export)

		s.router.Get("/", s.handleMonitor)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(s.config.StaticDir))
		s.router.Handle("/static/*", http.StripPrefix("/static", fileServer))
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
