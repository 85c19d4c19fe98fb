package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/vocabflash/internal/models"
)

type saveVocabularyRequest struct {
	Filename   string             `json:"filename" validate:"notblank"`
	Vocabulary []models.WordEntry `json:"vocabulary" validate:"required,dive"`
	Overwrite  bool               `json:"overwrite"`
}

type saveVocabularyResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Filename  string `json:"filename"`
	WordCount int    `json:"wordCount"`
}

type vocabularyFileResponse struct {
	Vocabulary []models.WordEntry `json:"vocabulary"`
	Filename   string             `json:"filename"`
	WordCount  int                `json:"wordCount"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleSaveVocabulary(w http.ResponseWriter, r *http.Request) {
	var req saveVocabularyRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	info, err := s.VocabularyService.Save(r.Context(), req.Filename, req.Vocabulary, req.Overwrite)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, saveVocabularyResponse{
		Success:   true,
		Message:   fmt.Sprintf("Saved %d words to %s", info.WordCount, info.Filename),
		Filename:  info.Filename,
		WordCount: info.WordCount,
	})
}

func (s *Server) handleListVocabulary(w http.ResponseWriter, r *http.Request) {
	files, err := s.VocabularyService.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if files == nil {
		files = []models.VocabularySetInfo{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"files": files})
}

func (s *Server) handleGetVocabulary(w http.ResponseWriter, r *http.Request) {
	set, err := s.VocabularyService.Get(r.Context(), chi.URLParam(r, "filename"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	words := set.Words
	if words == nil {
		words = []models.WordEntry{}
	}
	writeJSON(w, r, http.StatusOK, vocabularyFileResponse{Vocabulary: words, Filename: set.Filename, WordCount: len(words)})
}

func (s *Server) handleDeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if err := s.VocabularyService.Delete(r.Context(), filename); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, successResponse{Success: true, Message: fmt.Sprintf("Deleted %s", filename)})
}
