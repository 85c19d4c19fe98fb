package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "calendar date", input: "2024-01-30", want: NewDate(2024, time.January, 30)},
		{name: "timestamp", input: "2024-01-30T00:00:00.000Z", want: NewDate(2024, time.January, 30)},
		{name: "surrounding spaces", input: " 2024-02-29 ", want: NewDate(2024, time.February, 29)},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "impossible day", input: "2023-02-29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestDate_AddDaysAndDaysSince(t *testing.T) {
	d := NewDate(2024, time.January, 30)

	assert.Equal(t, "2024-02-12", d.AddDays(13).String())
	assert.Equal(t, 13, d.AddDays(13).DaysSince(d))
	assert.Equal(t, -1, d.AddDays(-1).DaysSince(d))
	assert.Equal(t, 366, NewDate(2025, time.January, 1).DaysSince(NewDate(2024, time.January, 1)))
}

func TestToday_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	now := time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01", Today(now, nil).String())
	assert.Equal(t, "2024-01-02", Today(now, loc).String())
}

func TestDate_JSON(t *testing.T) {
	record := ScheduleRecord{
		FirstStudyDate:   NewDate(2024, time.January, 1),
		LastReviewDate:   NewDate(2024, time.January, 2),
		ReviewDates:      []Date{NewDate(2024, time.January, 4)},
		CompletedReviews: []Date{NewDate(2024, time.January, 1), NewDate(2024, time.January, 2)},
	}

	b, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"firstStudyDate": "2024-01-01",
		"lastReviewDate": "2024-01-02",
		"reviewDates": ["2024-01-04"],
		"completedReviews": ["2024-01-01", "2024-01-02"]
	}`, string(b))

	var decoded ScheduleRecord
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, record, decoded)
}

func TestDate_UnmarshalJSONRejectsNonString(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`20240101`), &d))
	assert.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestSchedule_CloneIsDeep(t *testing.T) {
	s := Schedule{"a.json": {ReviewDates: []Date{NewDate(2024, time.January, 2)}}}

	c := s.Clone()
	c["a.json"].ReviewDates[0] = NewDate(2030, time.January, 1)

	assert.Equal(t, "2024-01-02", s["a.json"].ReviewDates[0].String())
}
