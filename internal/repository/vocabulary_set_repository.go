package repository

import (
	"context"

	"github.com/vytor/vocabflash/internal/models"
)

// VocabularySetRepository handles vocabulary set storage
type VocabularySetRepository interface {
	// Create stores entries under the sanitised form of name and returns the
	// resulting filename. Without overwrite it fails with ErrSetExists when the
	// set is already present.
	Create(ctx context.Context, name string, entries []models.WordEntry, overwrite bool) (string, error)
	Get(ctx context.Context, filename string) (*models.VocabularySet, error)
	// List returns listing metadata, most recently modified first.
	List(ctx context.Context) ([]models.VocabularySetInfo, error)
	Delete(ctx context.Context, filename string) error
	Exists(ctx context.Context, filename string) (bool, error)
}
