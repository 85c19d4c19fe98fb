package flashcard

import (
	"errors"

	"github.com/samber/lo"
	"github.com/vytor/vocabflash/internal/models"
)

// ReviewOffsets are the days after the first study on which a set is reviewed:
// Day 2, Day 4, Day 7 and Day 14.
var ReviewOffsets = [4]int{1, 3, 6, 13}

var reviewTypes = map[int]models.ReviewType{
	1:  models.ReviewTypeDay2,
	3:  models.ReviewTypeDay4,
	6:  models.ReviewTypeDay7,
	13: models.ReviewTypeDay14,
}

var (
	// ErrAlreadyStudied is returned when a set is marked first-time studied twice.
	ErrAlreadyStudied = errors.New("vocabulary set was already studied for the first time")
	// ErrNeverStudied is returned when a review is recorded for a set with no schedule.
	ErrNeverStudied = errors.New("vocabulary set has never been studied")
)

// ComputeReviewDates returns the four review dates following a first study.
func ComputeReviewDates(firstStudy models.Date) []models.Date {
	dates := make([]models.Date, 0, len(ReviewOffsets))
	for _, days := range ReviewOffsets {
		dates = append(dates, firstStudy.AddDays(days))
	}
	return dates
}

// ClassifyReviewType names the review that falls on today. Days that are not one
// of the fixed offsets yield ReviewTypeNone.
func ClassifyReviewType(firstStudy, today models.Date) models.ReviewType {
	return reviewTypes[today.DaysSince(firstStudy)]
}

// MarkStudied applies a studied event to the existing record (nil when the set
// has no schedule) and returns the resulting record. The input is never mutated.
//
// A first-time study creates the record and requires that none exists. A review
// requires an existing record; it is idempotent for a given day, and reviewing on
// a day that is not pending is tolerated.
func MarkStudied(existing *models.ScheduleRecord, isFirstTime bool, today models.Date) (models.ScheduleRecord, error) {
	if isFirstTime {
		if existing != nil {
			return models.ScheduleRecord{}, ErrAlreadyStudied
		}
		return models.ScheduleRecord{
			FirstStudyDate:   today,
			LastReviewDate:   today,
			ReviewDates:      ComputeReviewDates(today),
			CompletedReviews: []models.Date{today},
		}, nil
	}

	if existing == nil {
		return models.ScheduleRecord{}, ErrNeverStudied
	}

	record := existing.Clone()
	record.LastReviewDate = today
	if !containsDate(record.CompletedReviews, today) {
		record.CompletedReviews = append(record.CompletedReviews, today)
	}
	record.ReviewDates = lo.Filter(record.ReviewDates, func(d models.Date, _ int) bool {
		return !d.Equal(today)
	})
	return record, nil
}

// UpcomingReviews returns the pending review dates on or after today.
func UpcomingReviews(record models.ScheduleRecord, today models.Date) []models.Date {
	return lo.Filter(record.ReviewDates, func(d models.Date, _ int) bool {
		return !d.Before(today)
	})
}

func containsDate(dates []models.Date, day models.Date) bool {
	return lo.ContainsBy(dates, func(d models.Date) bool {
		return d.Equal(day)
	})
}
