package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/models"
)

type markStudiedRequest struct {
	Filename    string `json:"filename" validate:"notblank"`
	IsFirstTime bool   `json:"isFirstTime"`
}

type markStudiedResponse struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	Schedule *models.ScheduleRecord `json:"schedule"`
}

// dateParam resolves the optional ?date= override, falling back to today.
func (s *Server) dateParam(r *http.Request) (models.Date, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return s.today(), nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, errors.NewValidationError("date", "must be formatted as YYYY-MM-DD")
	}
	return d, nil
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	today, err := s.dateParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	view, err := s.StudyService.TodayView(r.Context(), today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleMarkStudied(w http.ResponseWriter, r *http.Request) {
	var req markStudiedRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	today, err := s.dateParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	record, err := s.StudyService.MarkStudied(r.Context(), req.Filename, req.IsFirstTime, today)
	if err != nil {
		handleError(w, r, err)
		return
	}

	msg := fmt.Sprintf("Marked %s as reviewed", req.Filename)
	if req.IsFirstTime {
		msg = fmt.Sprintf("Marked %s as studied for the first time", req.Filename)
	}
	writeJSON(w, r, http.StatusOK, markStudiedResponse{Success: true, Message: msg, Schedule: record})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	today, err := s.dateParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	history, err := s.StudyService.History(r.Context(), chi.URLParam(r, "filename"), today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, history)
}
