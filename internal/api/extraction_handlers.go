package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/vytor/vocabflash/internal/services"
)

type extractRequest struct {
	Passage   string          `json:"passage" validate:"notblank"`
	WordCount json.RawMessage `json:"wordCount"`
}

type lookupRequest struct {
	Word    string `json:"word" validate:"notblank"`
	Context string `json:"context"`
}

// wordCount reads the requested count leniently. Numbers and numeric strings
// are accepted; anything else falls back to the default.
func (req extractRequest) wordCount() int {
	raw := strings.TrimSpace(string(req.WordCount))
	if raw == "" || raw == "null" {
		return services.DefaultWordCount
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return services.DefaultWordCount
	}
	return int(f)
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	result, err := s.ExtractionService.Extract(r.Context(), req.Passage, req.wordCount())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	result, err := s.ExtractionService.Lookup(r.Context(), req.Word, req.Context)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
