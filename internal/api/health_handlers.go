package api

import (
	"net/http"

	"github.com/vytor/vocabflash/internal/logger"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleReady reports 503 until the schedule store can be loaded.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.StudyService.Ready(r.Context()); err != nil {
		logger.FromContext(r.Context()).Warn("readiness check failed - schedule store: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Schedule store unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Ready"))
}
