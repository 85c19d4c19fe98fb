package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/vocabflash/internal/models"
)

// MockVocabularySetRepository is a mock implementation of repository.VocabularySetRepository
type MockVocabularySetRepository struct {
	mock.Mock
}

func (m *MockVocabularySetRepository) Create(ctx context.Context, name string, entries []models.WordEntry, overwrite bool) (string, error) {
	args := m.Called(ctx, name, entries, overwrite)
	return args.String(0), args.Error(1)
}

func (m *MockVocabularySetRepository) Get(ctx context.Context, filename string) (*models.VocabularySet, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VocabularySet), args.Error(1)
}

func (m *MockVocabularySetRepository) List(ctx context.Context) ([]models.VocabularySetInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VocabularySetInfo), args.Error(1)
}

func (m *MockVocabularySetRepository) Delete(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}

func (m *MockVocabularySetRepository) Exists(ctx context.Context, filename string) (bool, error) {
	args := m.Called(ctx, filename)
	return args.Bool(0), args.Error(1)
}
