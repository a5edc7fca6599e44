// Package app wires the configuration, storage, feedback provider and
// HTTP server of the pose assessment service.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"ptpal/internal/config"
	"ptpal/internal/feedback"
	"ptpal/internal/server"
	"ptpal/internal/store"
)

// App is the assembled assessment service.
type App struct {
	config *config.Config
	store  *store.Store
	server *server.Server
}

// New creates a new App from the given configuration.
func New(cfg *config.Config) (*App, error) {
	thresholds, err := cfg.EngineThresholds()
	if err != nil {
		return nil, err
	}

	st, err := store.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	enhancer, err := newEnhancer(cfg)
	if err != nil {
		st.Close()
		return nil, err
	}

	srv := server.New(server.Config{
		StaticDir:  cfg.Server.StaticDir,
		Store:      st,
		Enhancer:   enhancer,
		Thresholds: thresholds,
	})

	return &App{config: cfg, store: st, server: srv}, nil
}

// newEnhancer builds the configured feedback enhancer. An empty provider
// means coaching is disabled and nil is returned.
func newEnhancer(cfg *config.Config) (feedback.Enhancer, error) {
	timeout := time.Duration(cfg.Feedback.TimeoutSeconds) * time.Second

	switch cfg.Feedback.Provider {
	case "":
		return nil, nil
	case "openai":
		return feedback.NewOpenAIEnhancer(cfg.Feedback.APIKey, cfg.Feedback.Model, timeout), nil
	case "gemini":
		return feedback.NewGeminiEnhancer(context.Background(), cfg.Feedback.APIKey, cfg.Feedback.Model)
	default:
		return nil, fmt.Errorf("unknown feedback provider %q", cfg.Feedback.Provider)
	}
}

// Handler returns the HTTP handler for the service.
func (a *App) Handler() http.Handler {
	return a.server
}

// ListenAndServe starts the HTTP server on the configured port.
func (a *App) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", a.config.Server.Port)
	log.Printf("Listening on %s", addr)
	return a.server.ListenAndServe(addr)
}

// Close releases the application's resources.
func (a *App) Close() error {
	return a.store.Close()
}
