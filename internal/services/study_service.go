package services

import (
	"context"
	stderrors "errors"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/flashcard"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

const neverStudiedMessage = "this vocabulary set has not been studied yet"

// StudyService handles the study schedule
type StudyService interface {
	TodayView(ctx context.Context, today models.Date) (*models.TodayView, error)
	MarkStudied(ctx context.Context, filename string, isFirstTime bool, today models.Date) (*models.ScheduleRecord, error)
	History(ctx context.Context, filename string, today models.Date) (*models.StudyHistory, error)
	// Ready reports whether the schedule store can be read.
	Ready(ctx context.Context) error
}

type studyService struct {
	sets      repository.VocabularySetRepository
	schedules repository.ScheduleRepository
}

// NewStudyService creates a new StudyService
func NewStudyService(sets repository.VocabularySetRepository, schedules repository.ScheduleRepository) StudyService {
	return &studyService{sets: sets, schedules: schedules}
}

func (s *studyService) TodayView(ctx context.Context, today models.Date) (*models.TodayView, error) {
	log := logger.FromContext(ctx).WithPrefix("study").WithField("today", today)

	sets, err := s.sets.List(ctx)
	if err != nil {
		log.Error("failed to list vocabulary sets: %v", err)
		return nil, errors.NewStorageError(err)
	}
	schedule := s.loadForRead(ctx)

	view := flashcard.BuildTodayView(sets, schedule, today)
	log.Debug("today view: total=%d new=%d review=%d upcoming=%d completed=%d",
		view.Summary.Total, view.Summary.New, view.Summary.Review, view.Summary.Upcoming, view.Summary.Completed)
	return &view, nil
}

func (s *studyService) MarkStudied(ctx context.Context, filename string, isFirstTime bool, today models.Date) (*models.ScheduleRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("study").WithFields(map[string]any{
		"filename":      filename,
		"is_first_time": isFirstTime,
	})

	if err := repository.ValidateFilename(filename); err != nil {
		return nil, errors.NewValidationError("filename", err.Error())
	}
	exists, err := s.sets.Exists(ctx, filename)
	if err != nil {
		log.Error("failed to check vocabulary set: %v", err)
		return nil, storeError(err, filename)
	}
	if !exists {
		return nil, errors.NewNotFoundError("vocabulary set", filename)
	}

	var updated models.ScheduleRecord
	err = s.schedules.Update(ctx, func(schedule models.Schedule) error {
		var existing *models.ScheduleRecord
		if record, ok := schedule[filename]; ok {
			existing = &record
		}

		record, err := flashcard.MarkStudied(existing, isFirstTime, today)
		switch {
		case stderrors.Is(err, flashcard.ErrAlreadyStudied):
			return errors.NewPreconditionError("vocabulary set was already studied for the first time; mark a review instead", err)
		case stderrors.Is(err, flashcard.ErrNeverStudied):
			return errors.NewPreconditionError("vocabulary set has not been studied for the first time yet", err)
		case err != nil:
			return errors.NewInternalError(err)
		}
		schedule[filename] = record
		updated = record
		return nil
	})
	if appErr, ok := errors.As(err); ok {
		return nil, appErr
	}
	if err != nil {
		// an unreadable schedule is never overwritten
		log.Error("failed to update schedule: %v", err)
		return nil, errors.NewStorageError(err)
	}

	log.Info("marked studied on %s, %d reviews pending", today, len(updated.ReviewDates))
	return &updated, nil
}

func (s *studyService) History(ctx context.Context, filename string, today models.Date) (*models.StudyHistory, error) {
	if err := repository.ValidateFilename(filename); err != nil {
		return nil, errors.NewValidationError("filename", err.Error())
	}

	record, ok := s.loadForRead(ctx)[filename]
	if !ok {
		return &models.StudyHistory{
			Filename:        filename,
			Status:          models.HistoryStatusNeverStudied,
			Message:         neverStudiedMessage,
			UpcomingReviews: []models.Date{},
		}, nil
	}
	if record.ReviewDates == nil {
		record.ReviewDates = []models.Date{}
	}
	if record.CompletedReviews == nil {
		record.CompletedReviews = []models.Date{}
	}
	return &models.StudyHistory{
		Filename:        filename,
		Status:          models.HistoryStatusStudied,
		ScheduleRecord:  &record,
		UpcomingReviews: flashcard.UpcomingReviews(record, today),
	}, nil
}

func (s *studyService) Ready(ctx context.Context) error {
	if _, err := s.schedules.Load(ctx); err != nil {
		return errors.NewStorageError(err)
	}
	return nil
}

// loadForRead returns the schedule, or an empty one when it cannot be read.
func (s *studyService) loadForRead(ctx context.Context) models.Schedule {
	schedule, err := s.schedules.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("study").Warn("schedule unreadable, treating as empty: %v", err)
		return models.Schedule{}
	}
	return schedule
}
