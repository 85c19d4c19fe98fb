package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

// VocabularyService handles stored vocabulary sets
type VocabularyService interface {
	Save(ctx context.Context, name string, entries []models.WordEntry, overwrite bool) (*models.VocabularySetInfo, error)
	List(ctx context.Context) ([]models.VocabularySetInfo, error)
	Get(ctx context.Context, filename string) (*models.VocabularySet, error)
	Delete(ctx context.Context, filename string) error
}

type vocabularyService struct {
	sets repository.VocabularySetRepository
}

// NewVocabularyService creates a new VocabularyService
func NewVocabularyService(sets repository.VocabularySetRepository) VocabularyService {
	return &vocabularyService{sets: sets}
}

func (s *vocabularyService) Save(ctx context.Context, name string, entries []models.WordEntry, overwrite bool) (*models.VocabularySetInfo, error) {
	log := logger.FromContext(ctx).WithPrefix("vocabulary")

	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("filename", "is required")
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Word) == "" {
			return nil, errors.NewValidationError("vocabulary", fmt.Sprintf("entry %d has no word", i))
		}
	}

	filename, err := s.sets.Create(ctx, name, entries, overwrite)
	if err != nil {
		if appErr := storeError(err, name); appErr.Code != errors.ErrCodeStorage {
			return nil, appErr
		}
		log.Error("failed to save vocabulary set %q: %v", name, err)
		return nil, errors.NewStorageError(err)
	}
	return &models.VocabularySetInfo{Filename: filename, WordCount: len(entries)}, nil
}

func (s *vocabularyService) List(ctx context.Context) ([]models.VocabularySetInfo, error) {
	sets, err := s.sets.List(ctx)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("vocabulary").Error("failed to list vocabulary sets: %v", err)
		return nil, errors.NewStorageError(err)
	}
	return sets, nil
}

func (s *vocabularyService) Get(ctx context.Context, filename string) (*models.VocabularySet, error) {
	set, err := s.sets.Get(ctx, filename)
	if err != nil {
		appErr := storeError(err, filename)
		if appErr.Code == errors.ErrCodeStorage {
			logger.FromContext(ctx).WithPrefix("vocabulary").Error("failed to read %s: %v", filename, err)
		}
		return nil, appErr
	}
	return set, nil
}

func (s *vocabularyService) Delete(ctx context.Context, filename string) error {
	if err := s.sets.Delete(ctx, filename); err != nil {
		appErr := storeError(err, filename)
		if appErr.Code == errors.ErrCodeStorage {
			logger.FromContext(ctx).WithPrefix("vocabulary").Error("failed to delete %s: %v", filename, err)
		}
		return appErr
	}
	return nil
}
