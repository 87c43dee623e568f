// Package server exposes the cleanup run over HTTP. Cloud Scheduler (or a
// curl) hits it on a timer; the request carries no meaningful payload.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/teableio/devreaper/internal/logger"
	"github.com/teableio/devreaper/internal/reaper"
)

// Runner is the shared orchestration both triggers delegate to.
type Runner interface {
	Run(ctx context.Context) (*reaper.RunSummary, error)
}

// Server serves the HTTP trigger
type Server struct {
	runner Runner
	log    logger.Logger
}

// New creates an HTTP trigger server
func New(runner Runner, log logger.Logger) *Server {
	return &Server{runner: runner, log: log}
}

// Handler returns the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleCleanup)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// ListenAndServe blocks serving the trigger endpoint on addr
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	// Nothing in the request matters; the trigger is just a tick.
	summary, err := s.runner.Run(r.Context())
	if err != nil {
		s.log.Error("cleanup run failed", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
