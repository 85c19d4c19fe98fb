package repository

import (
	"context"

	"github.com/vytor/vocabflash/internal/models"
)

// ScheduleRepository persists the study schedule as a single document.
type ScheduleRepository interface {
	// Load returns the whole schedule. A missing document is an empty schedule;
	// an unreadable one yields ErrCorruptSchedule.
	Load(ctx context.Context) (models.Schedule, error)
	// Save replaces the whole schedule atomically.
	Save(ctx context.Context, schedule models.Schedule) error
	// Update loads the schedule, lets fn modify it in place and saves it,
	// holding a lock that excludes every other Update on the same store,
	// including ones from other processes. Nothing is saved when Load or fn
	// fails; fn's error is returned unchanged.
	Update(ctx context.Context, fn func(models.Schedule) error) error
}
