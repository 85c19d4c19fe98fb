package models

// StudyStatus is the classification of a vocabulary set for a given day.
type StudyStatus string

const (
	StudyStatusNew       StudyStatus = "new"
	StudyStatusReview    StudyStatus = "review"
	StudyStatusUpcoming  StudyStatus = "upcoming"
	StudyStatusCompleted StudyStatus = "completed"
)

// ReviewType labels which of the fixed reviews falls due. Empty when the day
// does not match one of the fixed offsets.
type ReviewType string

const (
	ReviewTypeNone  ReviewType = ""
	ReviewTypeDay2  ReviewType = "day2/first review"
	ReviewTypeDay4  ReviewType = "day4/second review"
	ReviewTypeDay7  ReviewType = "day7/third review"
	ReviewTypeDay14 ReviewType = "day14/final review"
)

// StudyItem is one vocabulary set in the daily view.
type StudyItem struct {
	Filename       string      `json:"filename"`
	WordCount      int         `json:"wordCount"`
	CreatedDate    Date        `json:"createdDate"`
	Status         StudyStatus `json:"status"`
	Message        string      `json:"message,omitempty"`
	ReviewType     ReviewType  `json:"reviewType,omitempty"`
	FirstStudyDate *Date       `json:"firstStudyDate,omitempty"`
	CompletedCount int         `json:"completedCount"`
	NextReviewDate *Date       `json:"nextReviewDate,omitempty"`
	MissedReviews  []Date      `json:"missedReviews,omitempty"`
}

// StudySummary counts the daily view. Total equals the sum of the four
// categories.
type StudySummary struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Review    int `json:"review"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
}

// TodayView is the study plan for one day.
type TodayView struct {
	Today         Date         `json:"today"`
	NewFiles      []StudyItem  `json:"newFiles"`
	ReviewFiles   []StudyItem  `json:"reviewFiles"`
	UpcomingFiles []StudyItem  `json:"upcomingFiles"`
	Completed     []StudyItem  `json:"completed"`
	Summary       StudySummary `json:"summary"`
}

const (
	HistoryStatusStudied      = "studied"
	HistoryStatusNeverStudied = "never_studied"
)

// StudyHistory is the schedule record of one set as seen on a given day.
type StudyHistory struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	*ScheduleRecord
	UpcomingReviews []Date `json:"upcomingReviews"`
}
