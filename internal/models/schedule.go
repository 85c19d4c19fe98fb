package models

// ScheduleRecord is the spaced-repetition state of one vocabulary set.
type ScheduleRecord struct {
	FirstStudyDate   Date   `json:"firstStudyDate"`
	LastReviewDate   Date   `json:"lastReviewDate"`
	ReviewDates      []Date `json:"reviewDates"`
	CompletedReviews []Date `json:"completedReviews"`
}

// Clone returns a deep copy so callers can mutate slices freely.
func (r ScheduleRecord) Clone() ScheduleRecord {
	out := r
	out.ReviewDates = append(make([]Date, 0, len(r.ReviewDates)), r.ReviewDates...)
	out.CompletedReviews = append(make([]Date, 0, len(r.CompletedReviews)), r.CompletedReviews...)
	return out
}

// Schedule maps a vocabulary set filename to its record.
type Schedule map[string]ScheduleRecord

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for k, v := range s {
		out[k] = v.Clone()
	}
	return out
}
