// Package server exposes the intake engine over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fylr/fylr-engine/internal/complexity"
	"github.com/fylr/fylr-engine/internal/engine"
	"github.com/fylr/fylr-engine/internal/ledger"
	"github.com/fylr/fylr-engine/internal/startup"
	"github.com/fylr/fylr-engine/internal/taxengine"
)

const apiVersion = "1.0.0"

// Server wires the intake components behind a REST API.
type Server struct {
	parser    *engine.Parser
	assessor  *complexity.Assessor
	optimizer *startup.Optimizer
	taxes     *taxengine.Engine
	books     *ledger.Ledger
	logger    *slog.Logger
	httpSrv   *http.Server
}

// Config holds HTTP server settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// New creates a Server. The ledger and tax engine are optional; their routes
// respond 503 when absent.
func New(cfg Config, parser *engine.Parser, assessor *complexity.Assessor, optimizer *startup.Optimizer, taxes *taxengine.Engine, books *ledger.Ledger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}

	s := &Server{
		parser:    parser,
		assessor:  assessor,
		optimizer: optimizer,
		taxes:     taxes,
		books:     books,
		logger:    logger,
	}

	s.httpSrv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Router builds the route table. Exposed separately so tests can drive the
// handlers through httptest without binding a port.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/intake").Subrouter()
	api.HandleFunc("/parse-expense", s.handleParseExpense).Methods(http.MethodPost)
	api.HandleFunc("/assess-complexity", s.handleAssessComplexity).Methods(http.MethodPost)
	api.HandleFunc("/optimize-startup", s.handleOptimizeStartup).Methods(http.MethodPost)
	api.HandleFunc("/batch-parse", s.handleBatchParse).Methods(http.MethodPost)
	api.HandleFunc("/quarterly-estimate", s.handleQuarterlyEstimate).Methods(http.MethodPost)
	api.HandleFunc("/detect-platform", s.handleDetectPlatform).Methods(http.MethodPost)
	api.HandleFunc("/ledger/entries", s.handleAddEntry).Methods(http.MethodPost)
	api.HandleFunc("/ledger/entries", s.handleListEntries).Methods(http.MethodGet)
	api.HandleFunc("/ledger/readiness", s.handleReadiness).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return r
}

// Start serves HTTP until the context is canceled, then drains connections.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}
