package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vytor/vocabflash/internal/models"
)

type printer struct {
	out     io.Writer
	heading *color.Color
	review  *color.Color
	newSet  *color.Color
	muted   *color.Color
	success *color.Color
}

func newPrinter(out io.Writer, colored bool) *printer {
	p := &printer{
		out:     out,
		heading: color.New(color.Bold),
		review:  color.New(color.FgYellow),
		newSet:  color.New(color.FgCyan),
		muted:   color.New(color.Faint),
		success: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.heading, p.review, p.newSet, p.muted, p.success} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) todayView(view *models.TodayView) {
	s := view.Summary
	_, _ = p.heading.Fprintf(p.out, "Study plan for %s\n", view.Today)
	_, _ = fmt.Fprintf(p.out, "%d sets: %d new, %d to review, %d upcoming, %d completed\n",
		s.Total, s.New, s.Review, s.Upcoming, s.Completed)

	p.section("To review", p.review, view.ReviewFiles, func(it models.StudyItem) string {
		label := string(it.ReviewType)
		if label == "" {
			label = "review"
		}
		return fmt.Sprintf("%s (%d words) %s, %d/5 sessions done", it.Filename, it.WordCount, label, it.CompletedCount)
	})
	p.section("New", p.newSet, view.NewFiles, func(it models.StudyItem) string {
		return fmt.Sprintf("%s (%d words)", it.Filename, it.WordCount)
	})
	p.section("Upcoming", p.muted, view.UpcomingFiles, func(it models.StudyItem) string {
		if it.NextReviewDate == nil {
			return it.Filename
		}
		return fmt.Sprintf("%s next review %s", it.Filename, it.NextReviewDate)
	})
	p.section("Completed", p.success, view.Completed, func(it models.StudyItem) string {
		return it.Filename
	})
}

func (p *printer) section(title string, c *color.Color, items []models.StudyItem, line func(models.StudyItem) string) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintln(p.out)
	_, _ = c.Fprintf(p.out, "%s:\n", title)
	for _, it := range items {
		_, _ = fmt.Fprintf(p.out, "  - %s\n", line(it))
	}
}

func (p *printer) marked(filename string, first bool, record *models.ScheduleRecord) {
	verb := "Reviewed"
	if first {
		verb = "Studied"
	}
	_, _ = p.success.Fprintf(p.out, "%s %s\n", verb, filename)
	if len(record.ReviewDates) == 0 {
		_, _ = fmt.Fprintln(p.out, "All reviews completed")
		return
	}
	_, _ = fmt.Fprintf(p.out, "Remaining reviews: %s\n", joinDates(record.ReviewDates))
}

func (p *printer) history(h *models.StudyHistory) {
	if h.Status == models.HistoryStatusNeverStudied || h.ScheduleRecord == nil {
		_, _ = p.muted.Fprintf(p.out, "%s has never been studied\n", h.Filename)
		return
	}
	_, _ = p.heading.Fprintf(p.out, "%s\n", h.Filename)
	_, _ = fmt.Fprintf(p.out, "First studied: %s\n", h.FirstStudyDate)
	_, _ = fmt.Fprintf(p.out, "Last review:   %s\n", h.LastReviewDate)
	_, _ = fmt.Fprintf(p.out, "Sessions:      %s\n", joinDates(h.CompletedReviews))
	if len(h.UpcomingReviews) == 0 {
		_, _ = fmt.Fprintln(p.out, "Upcoming:      none")
		return
	}
	_, _ = fmt.Fprintf(p.out, "Upcoming:      %s\n", joinDates(h.UpcomingReviews))
}

func (p *printer) sets(sets []models.VocabularySetInfo) {
	if len(sets) == 0 {
		_, _ = p.muted.Fprintln(p.out, "No vocabulary sets saved yet")
		return
	}
	for _, s := range sets {
		_, _ = fmt.Fprintf(p.out, "%-40s %4d words  %s\n", s.Filename, s.WordCount, s.ModifiedAt.Format("2006-01-02 15:04"))
	}
}

func joinDates(dates []models.Date) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}
