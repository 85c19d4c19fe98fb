package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
	"github.com/vytor/vocabflash/internal/worker"
)

const listWorkers = 4

type vocabularySetRepository struct {
	dir string
}

// NewVocabularySetRepository stores each vocabulary set as a JSON array in dir.
func NewVocabularySetRepository(dir string) repository.VocabularySetRepository {
	return &vocabularySetRepository{dir: dir}
}

func (r *vocabularySetRepository) Create(ctx context.Context, name string, entries []models.WordEntry, overwrite bool) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("vocab_store")

	filename, err := repository.SanitizeFilename(name)
	if err != nil {
		return "", err
	}
	if entries == nil {
		entries = []models.WordEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode vocabulary set: %w", err)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		log.Error("failed to create vocabulary directory: %v", err)
		return "", fmt.Errorf("create vocabulary directory: %w", err)
	}

	target := filepath.Join(r.dir, filename)
	if overwrite {
		err = replaceFile(target, data)
	} else {
		err = createFile(target, data)
	}
	if errors.Is(err, os.ErrExist) {
		log.Debug("vocabulary set exists: %s", filename)
		return "", fmt.Errorf("%w: %s", repository.ErrSetExists, filename)
	}
	if err != nil {
		log.Error("failed to write vocabulary set %s: %v", filename, err)
		return "", fmt.Errorf("write vocabulary set: %w", err)
	}

	log.Info("saved vocabulary set %s with %d words (overwrite=%t)", filename, len(entries), overwrite)
	return filename, nil
}

func (r *vocabularySetRepository) Get(ctx context.Context, filename string) (*models.VocabularySet, error) {
	log := logger.FromContext(ctx).WithPrefix("vocab_store")

	if err := repository.ValidateFilename(filename); err != nil {
		return nil, err
	}
	path := filepath.Join(r.dir, filename)
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", repository.ErrSetNotFound, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("stat vocabulary set: %w", err)
	}

	entries, err := readEntries(path)
	if err != nil {
		log.Error("failed to read vocabulary set %s: %v", filename, err)
		return nil, err
	}
	return &models.VocabularySet{
		Filename:   filename,
		Words:      entries,
		CreatedAt:  info.ModTime(),
		ModifiedAt: info.ModTime(),
	}, nil
}

func (r *vocabularySetRepository) List(ctx context.Context) ([]models.VocabularySetInfo, error) {
	log := logger.FromContext(ctx).WithPrefix("vocab_store")

	dirEntries, err := os.ReadDir(r.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []models.VocabularySetInfo{}, nil
	}
	if err != nil {
		log.Error("failed to list vocabulary directory: %v", err)
		return nil, fmt.Errorf("list vocabulary directory: %w", err)
	}

	var candidates []os.DirEntry
	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, repository.SetExtension) {
			continue
		}
		candidates = append(candidates, entry)
	}

	// word counts need every file parsed, so read them in parallel
	found := make([]*models.VocabularySetInfo, len(candidates))
	pool := worker.NewPool(min(len(candidates), listWorkers), len(candidates))
	pool.Start(ctx)
	for i, entry := range candidates {
		job := worker.Func{JobName: "read " + entry.Name(), Fn: func(ctx context.Context) error {
			info, err := r.readInfo(ctx, entry)
			found[i] = info
			return err
		}}
		if err := pool.Submit(ctx, job); err != nil {
			pool.Stop()
			return nil, err
		}
	}
	pool.Stop()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sets := make([]models.VocabularySetInfo, 0, len(found))
	for _, info := range found {
		if info != nil {
			sets = append(sets, *info)
		}
	}

	sort.SliceStable(sets, func(i, j int) bool {
		if sets[i].ModifiedAt.Equal(sets[j].ModifiedAt) {
			return sets[i].Filename < sets[j].Filename
		}
		return sets[i].ModifiedAt.After(sets[j].ModifiedAt)
	})
	log.Debug("listed %d vocabulary sets", len(sets))
	return sets, nil
}

// readInfo fails when the file vanished after the directory was read.
func (r *vocabularySetRepository) readInfo(ctx context.Context, entry os.DirEntry) (*models.VocabularySetInfo, error) {
	name := entry.Name()
	info, err := entry.Info()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}

	wordCount := 0
	if words, err := readEntries(filepath.Join(r.dir, name)); err != nil {
		logger.FromContext(ctx).WithField("filename", name).Warn("listing unreadable vocabulary set with no words: %v", err)
	} else {
		wordCount = len(words)
	}

	return &models.VocabularySetInfo{
		Filename:   name,
		WordCount:  wordCount,
		CreatedAt:  info.ModTime(),
		ModifiedAt: info.ModTime(),
		Size:       info.Size(),
	}, nil
}

func (r *vocabularySetRepository) Delete(ctx context.Context, filename string) error {
	if err := repository.ValidateFilename(filename); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(r.dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", repository.ErrSetNotFound, filename)
	}
	if err != nil {
		logger.FromContext(ctx).WithPrefix("vocab_store").Error("failed to delete %s: %v", filename, err)
		return fmt.Errorf("delete vocabulary set: %w", err)
	}
	logger.FromContext(ctx).WithPrefix("vocab_store").Info("deleted vocabulary set %s", filename)
	return nil
}

func (r *vocabularySetRepository) Exists(ctx context.Context, filename string) (bool, error) {
	if err := repository.ValidateFilename(filename); err != nil {
		return false, err
	}
	info, err := os.Stat(filepath.Join(r.dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat vocabulary set: %w", err)
	}
	return !info.IsDir(), nil
}

func readEntries(path string) ([]models.WordEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary set: %w", err)
	}
	var entries []models.WordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode vocabulary set: %w", err)
	}
	if entries == nil {
		entries = []models.WordEntry{}
	}
	return entries, nil
}
