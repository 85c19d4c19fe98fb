package api

import (
	"fmt"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/services"
)

type Server struct {
	StudyService      services.StudyService
	VocabularyService services.VocabularyService
	ExtractionService services.ExtractionService

	// StaticDir is served at / when non-empty.
	StaticDir string
	// Location decides the calendar day used as "today".
	Location *time.Location
	// RequestTimeout bounds every request when positive.
	RequestTimeout time.Duration
	Now            func() time.Time

	validate *validator.Validate
	trans    ut.Translator
}

// NewServer creates a Server with UTC days and the wall clock.
func NewServer(study services.StudyService, vocabulary services.VocabularyService, extraction services.ExtractionService) (*Server, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("create request validator: %w", err)
	}
	return &Server{
		StudyService:      study,
		VocabularyService: vocabulary,
		ExtractionService: extraction,
		Location:          time.UTC,
		Now:               time.Now,
		validate:          validate,
		trans:             trans,
	}, nil
}

func (s *Server) today() models.Date {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return models.Today(now(), s.Location)
}
