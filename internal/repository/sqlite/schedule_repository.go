package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository"
)

const scheduleTable = "study_schedules"

type scheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a ScheduleRepository backed by the
// study_schedules table, one row per vocabulary set.
func NewScheduleRepository(db *sql.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Load(ctx context.Context) (models.Schedule, error) {
	return r.load(ctx, r.db)
}

func (r *scheduleRepository) load(ctx context.Context, q querier) (models.Schedule, error) {
	log := logger.FromContext(ctx).WithPrefix("schedule_repo")

	query, args, err := sqlBuilder.
		Select("filename", "first_study_date", "last_review_date", "review_dates", "completed_reviews").
		From(scheduleTable).
		OrderBy("filename").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query schedule: %v", err)
		return nil, err
	}
	defer rows.Close()

	schedule := models.Schedule{}
	for rows.Next() {
		var filename, first, last, reviews, completed string
		if err := rows.Scan(&filename, &first, &last, &reviews, &completed); err != nil {
			log.Error("failed to scan schedule row: %v", err)
			return nil, err
		}
		record, err := decodeRecord(first, last, reviews, completed)
		if err != nil {
			log.Error("corrupt schedule row %s: %v", filename, err)
			return nil, fmt.Errorf("%w: %s: %v", repository.ErrCorruptSchedule, filename, err)
		}
		schedule[filename] = record
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	log.Debug("loaded schedule with %d records", len(schedule))
	return schedule, nil
}

func (r *scheduleRepository) Save(ctx context.Context, schedule models.Schedule) error {
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		return r.replaceAll(ctx, tx, schedule)
	})
	if err != nil {
		logger.FromContext(ctx).WithPrefix("schedule_repo").Error("failed to save schedule: %v", err)
		return fmt.Errorf("save schedule: %w", err)
	}
	return nil
}

// Update runs in one transaction. The connection opens transactions with
// BEGIN IMMEDIATE, so concurrent updaters queue on the write lock.
func (r *scheduleRepository) Update(ctx context.Context, fn func(models.Schedule) error) error {
	return tx(ctx, r.db, func(tx *sql.Tx) error {
		schedule, err := r.load(ctx, tx)
		if err != nil {
			return err
		}
		if err := fn(schedule); err != nil {
			return err
		}
		return r.replaceAll(ctx, tx, schedule)
	})
}

func (r *scheduleRepository) replaceAll(ctx context.Context, tx *sql.Tx, schedule models.Schedule) error {
	filenames := make([]string, 0, len(schedule))
	for f := range schedule {
		filenames = append(filenames, f)
	}
	sort.Strings(filenames)

	del, args, err := sqlBuilder.Delete(scheduleTable).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return err
	}
	if len(filenames) == 0 {
		return nil
	}

	insert := sqlBuilder.Insert(scheduleTable).
		Columns("filename", "first_study_date", "last_review_date", "review_dates", "completed_reviews")
	for _, f := range filenames {
		record := schedule[f]
		reviews, err := encodeDates(record.ReviewDates)
		if err != nil {
			return err
		}
		completed, err := encodeDates(record.CompletedReviews)
		if err != nil {
			return err
		}
		insert = insert.Values(f, record.FirstStudyDate.String(), record.LastReviewDate.String(), reviews, completed)
	}
	ins, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, ins, args...); err != nil {
		return err
	}
	logger.FromContext(ctx).WithPrefix("schedule_repo").Debug("wrote schedule with %d records", len(filenames))
	return nil
}

func decodeRecord(first, last, reviews, completed string) (models.ScheduleRecord, error) {
	var record models.ScheduleRecord
	var err error
	if record.FirstStudyDate, err = models.ParseDate(first); err != nil {
		return record, err
	}
	if record.LastReviewDate, err = models.ParseDate(last); err != nil {
		return record, err
	}
	if record.ReviewDates, err = decodeDates(reviews); err != nil {
		return record, err
	}
	if record.CompletedReviews, err = decodeDates(completed); err != nil {
		return record, err
	}
	return record, nil
}
