package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/config"
	"github.com/vytor/vocabflash/internal/models"
)

func testConfig(t *testing.T, backend string) config.Config {
	dir := t.TempDir()
	return config.Config{
		Addr:             ":0",
		VocabDir:         filepath.Join(dir, "sets"),
		ScheduleBackend:  backend,
		SchedulePath:     filepath.Join(dir, "sets", ".study_schedule.json"),
		DBPath:           "file:" + filepath.Join(dir, "schedule.db"),
		StudyTimezone:    "UTC",
		LogLevel:         "INFO",
		GeminiMaxRetries: 1,
		GeminiTimeout:    1,
	}
}

func TestNew_Backends(t *testing.T) {
	for _, backend := range []string{config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			a, err := New(ctx, testConfig(t, backend))
			require.NoError(t, err)
			defer func() { assert.NoError(t, a.Close()) }()

			_, err = a.Vocabulary.Save(ctx, "unit", []models.WordEntry{{Word: "abandon"}}, false)
			require.NoError(t, err)
			_, err = a.Study.MarkStudied(ctx, "unit.json", true, models.NewDate(2024, 1, 1))
			require.NoError(t, err)

			history, err := a.Study.History(ctx, "unit.json", models.NewDate(2024, 1, 1))
			require.NoError(t, err)
			assert.Equal(t, models.HistoryStatusStudied, history.Status)
			assert.NoError(t, a.Study.Ready(ctx))
		})
	}
}

func TestNew_MockModeWithoutAPIKey(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t, config.BackendFile))
	require.NoError(t, err)
	defer a.Close()

	result, err := a.Extraction.Extract(ctx, "some passage", 0)
	require.NoError(t, err)
	assert.True(t, result.IsMockData)
}
