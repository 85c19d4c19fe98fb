package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/vocabflash/internal/models"
)

// MockScheduleRepository is a mock implementation of repository.ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Load(ctx context.Context) (models.Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) Save(ctx context.Context, schedule models.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

// Update runs fn between the mocked Load and Save, so tests set expectations
// on those two calls.
func (m *MockScheduleRepository) Update(ctx context.Context, fn func(models.Schedule) error) error {
	schedule, err := m.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(schedule); err != nil {
		return err
	}
	return m.Save(ctx, schedule)
}
