package flashcard

import (
	"github.com/samber/lo"
	"github.com/vytor/vocabflash/internal/models"
)

const (
	messageNew       = "not studied yet"
	messageCompleted = "all reviews completed"
)

// BuildTodayView classifies every vocabulary set for today:
//   - no schedule record: new
//   - today among the pending review dates: review
//   - no pending review dates: completed
//   - otherwise: upcoming
//
// Items keep the order of sets. The result depends only on its arguments.
func BuildTodayView(sets []models.VocabularySetInfo, schedule models.Schedule, today models.Date) models.TodayView {
	view := models.TodayView{
		Today:         today,
		NewFiles:      []models.StudyItem{},
		ReviewFiles:   []models.StudyItem{},
		UpcomingFiles: []models.StudyItem{},
		Completed:     []models.StudyItem{},
	}

	for _, set := range sets {
		item := models.StudyItem{
			Filename:    set.Filename,
			WordCount:   set.WordCount,
			CreatedDate: models.DateOf(set.CreatedAt),
		}

		record, ok := schedule[set.Filename]
		if !ok {
			item.Status = models.StudyStatusNew
			item.Message = messageNew
			view.NewFiles = append(view.NewFiles, item)
			continue
		}

		first := record.FirstStudyDate
		item.FirstStudyDate = &first
		item.CompletedCount = len(record.CompletedReviews)

		switch {
		case containsDate(record.ReviewDates, today):
			item.Status = models.StudyStatusReview
			item.ReviewType = ClassifyReviewType(record.FirstStudyDate, today)
			view.ReviewFiles = append(view.ReviewFiles, item)
		case len(record.ReviewDates) == 0:
			item.Status = models.StudyStatusCompleted
			item.Message = messageCompleted
			view.Completed = append(view.Completed, item)
		default:
			item.Status = models.StudyStatusUpcoming
			if upcoming := UpcomingReviews(record, today); len(upcoming) > 0 {
				next := lo.MinBy(upcoming, func(a, b models.Date) bool { return a.Before(b) })
				item.NextReviewDate = &next
			}
			item.MissedReviews = lo.Filter(record.ReviewDates, func(d models.Date, _ int) bool {
				return d.Before(today)
			})
			view.UpcomingFiles = append(view.UpcomingFiles, item)
		}
	}

	view.Summary = models.StudySummary{
		Total:     len(sets),
		New:       len(view.NewFiles),
		Review:    len(view.ReviewFiles),
		Upcoming:  len(view.UpcomingFiles),
		Completed: len(view.Completed),
	}
	return view
}
