package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

const (
	lockSuffix     = ".lock"
	lockRetryDelay = 20 * time.Millisecond
)

type scheduleRepository struct {
	path string
}

// NewScheduleRepository stores the schedule as one JSON document at path.
// Updates take an advisory lock on path+".lock".
func NewScheduleRepository(path string) repository.ScheduleRepository {
	return &scheduleRepository{path: path}
}

func (r *scheduleRepository) Load(ctx context.Context) (models.Schedule, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_store")

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("no schedule at %s, starting empty", r.path)
		return models.Schedule{}, nil
	}
	if err != nil {
		log.Error("failed to read schedule: %v", err)
		return nil, fmt.Errorf("read schedule: %w", err)
	}

	var schedule models.Schedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		log.Error("failed to decode schedule %s: %v", r.path, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrCorruptSchedule, err)
	}
	if schedule == nil {
		schedule = models.Schedule{}
	}
	log.Debug("loaded schedule with %d records", len(schedule))
	return schedule, nil
}

func (r *scheduleRepository) Save(ctx context.Context, schedule models.Schedule) error {
	log := logger.FromContext(ctx).WithPrefix("schedule_store")

	if schedule == nil {
		schedule = models.Schedule{}
	}
	data, err := json.MarshalIndent(schedule, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		log.Error("failed to create schedule directory: %v", err)
		return fmt.Errorf("create schedule directory: %w", err)
	}
	if err := replaceFile(r.path, data); err != nil {
		log.Error("failed to save schedule: %v", err)
		return fmt.Errorf("save schedule: %w", err)
	}
	log.Debug("saved schedule with %d records", len(schedule))
	return nil
}

func (r *scheduleRepository) Update(ctx context.Context, fn func(models.Schedule) error) error {
	log := logger.FromContext(ctx).WithPrefix("schedule_store")

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create schedule directory: %w", err)
	}
	lock := flock.New(r.path + lockSuffix)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		log.Error("failed to lock schedule: %v", err)
		return fmt.Errorf("lock schedule: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock schedule: %s is held elsewhere", lock.Path())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("failed to unlock schedule: %v", err)
		}
	}()

	schedule, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(schedule); err != nil {
		return err
	}
	return r.Save(ctx, schedule)
}
