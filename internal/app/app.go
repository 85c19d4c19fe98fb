package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vytor/vocabflash/internal/config"
	"github.com/vytor/vocabflash/internal/db"
	"github.com/vytor/vocabflash/internal/generator"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/repository"
	"github.com/vytor/vocabflash/internal/repository/filestore"
	"github.com/vytor/vocabflash/internal/repository/sqlite"
	"github.com/vytor/vocabflash/internal/services"
)

// App holds the services built from a Config and the resources behind them.
type App struct {
	Study      services.StudyService
	Vocabulary services.VocabularyService
	Extraction services.ExtractionService

	closers []func() error
}

// New wires repositories, the language model client and services for cfg.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx).WithPrefix("app")

	if err := os.MkdirAll(cfg.VocabDir, 0o755); err != nil {
		return nil, fmt.Errorf("create vocabulary directory: %w", err)
	}

	a := &App{}
	schedules, err := a.scheduleRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sets := filestore.NewVocabularySetRepository(cfg.VocabDir)

	var gen generator.Generator
	if cfg.MockMode() {
		log.Warn("GEMINI_API_KEY not set, extraction serves sample data")
	} else {
		gemini := generator.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, cfg.GeminiTimeout)
		a.closers = append(a.closers, gemini.Close)
		gen = generator.WithRetry(gemini, uint(cfg.GeminiMaxRetries), cfg.GeminiRetryDelay)
		log.Info("using language model %s", gemini.Model())
	}

	extraction, err := services.NewExtractionService(gen)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Study = services.NewStudyService(sets, schedules)
	a.Vocabulary = services.NewVocabularyService(sets)
	a.Extraction = extraction
	return a, nil
}

func (a *App) scheduleRepository(ctx context.Context, cfg config.Config) (repository.ScheduleRepository, error) {
	log := logger.FromContext(ctx).WithPrefix("app")

	switch cfg.ScheduleBackend {
	case config.BackendSQLite:
		database, err := db.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open schedule database: %w", err)
		}
		a.closers = append(a.closers, database.Close)
		log.Info("schedule stored in sqlite at %s", cfg.DBPath)
		return sqlite.NewScheduleRepository(database.DB), nil
	default:
		log.Info("schedule stored in %s", cfg.SchedulePath)
		return filestore.NewScheduleRepository(cfg.SchedulePath), nil
	}
}

// Close releases every resource opened by New.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
