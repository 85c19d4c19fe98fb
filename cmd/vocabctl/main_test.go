package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository/filestore"
	"github.com/vytor/vocabflash/internal/testutil"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := testutil.NewVocabDir(t)
	t.Setenv("VOCAB_DIR", dir)
	t.Setenv("SCHEDULE_BACKEND", "file")
	t.Setenv("SCHEDULE_PATH", filepath.Join(dir, ".study_schedule.json"))
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("STUDY_TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "ERROR")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestVocabctl_StudyCycle(t *testing.T) {
	dir := setupEnv(t)
	_, err := filestore.NewVocabularySetRepository(dir).Create(t.Context(), "unit one", []models.WordEntry{{Word: "abandon"}, {Word: "brisk"}}, false)
	require.NoError(t, err)

	out, err := run(t, "today", "--date", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Study plan for 2024-03-01")
	assert.Contains(t, out, "1 sets: 1 new, 0 to review, 0 upcoming, 0 completed")
	assert.Contains(t, out, "unit_one.json (2 words)")

	out, err = run(t, "mark", "unit_one.json", "--first", "--date", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Studied unit_one.json")
	assert.Contains(t, out, "Remaining reviews: 2024-03-02, 2024-03-04, 2024-03-07, 2024-03-14")

	out, err = run(t, "today", "--date", "2024-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "day2/first review, 1/5 sessions done")

	out, err = run(t, "history", "unit_one.json", "--date", "2024-03-05")
	require.NoError(t, err)
	assert.Contains(t, out, "First studied: 2024-03-01")
	assert.Contains(t, out, "Upcoming:      2024-03-07, 2024-03-14")
}

func TestVocabctl_Errors(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "mark", "missing.json", "--date", "2024-03-01")
	assert.Error(t, err)

	_, err = run(t, "today", "--date", "March 1")
	assert.ErrorContains(t, err, "--date must be YYYY-MM-DD")

	out, err := run(t, "history", "missing.json")
	require.NoError(t, err)
	assert.Contains(t, out, "missing.json has never been studied")

	out, err = run(t, "sets")
	require.NoError(t, err)
	assert.Contains(t, out, "No vocabulary sets saved yet")
}
