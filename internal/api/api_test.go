package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vytor/vocabflash/internal/generator"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/vytor/vocabflash/internal/repository/filestore"
	"github.com/vytor/vocabflash/internal/services"
	"github.com/vytor/vocabflash/internal/testutil"
	"github.com/vytor/vocabflash/internal/testutil/mocks"
)

type APITestSuite struct {
	suite.Suite
	dir          string
	schedulePath string
	gen          *mocks.MockGenerator
	handler      http.Handler
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	s.dir = testutil.NewVocabDir(s.T())
	s.schedulePath = filepath.Join(s.dir, ".study_schedule.json")
	s.gen = new(mocks.MockGenerator)

	sets := filestore.NewVocabularySetRepository(s.dir)
	extraction, err := services.NewExtractionService(s.gen)
	s.Require().NoError(err)

	srv, err := NewServer(
		services.NewStudyService(sets, filestore.NewScheduleRepository(s.schedulePath)),
		services.NewVocabularyService(sets),
		extraction,
	)
	s.Require().NoError(err)
	srv.Now = func() time.Time { return time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC) }
	s.handler = srv.Routes()
}

func (s *APITestSuite) do(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			s.Require().NoError(json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *APITestSuite) decode(rec *httptest.ResponseRecorder, dst any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func (s *APITestSuite) field(rec *httptest.ResponseRecorder, name string) json.RawMessage {
	var body map[string]json.RawMessage
	s.decode(rec, &body)
	s.Require().Contains(body, name)
	return body[name]
}

func (s *APITestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body struct {
		Error errorBody `json:"error"`
	}
	s.decode(rec, &body)
	return body.Error.Code
}

func (s *APITestSuite) saveSet(name string, words ...string) string {
	entries := make([]map[string]string, 0, len(words))
	for _, w := range words {
		entries = append(entries, map[string]string{"word": w})
	}
	rec := s.do(http.MethodPost, "/api/save-vocabulary", map[string]any{"filename": name, "vocabulary": entries})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var resp saveVocabularyResponse
	s.decode(rec, &resp)
	return resp.Filename
}

func (s *APITestSuite) TestHealthAndReady() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("OK", rec.Body.String())

	rec = s.do(http.MethodGet, "/readyz", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(requestIDHeader))
}

func (s *APITestSuite) TestReady_CorruptSchedule() {
	s.Require().NoError(os.WriteFile(s.schedulePath, []byte("{not json"), 0o644))

	rec := s.do(http.MethodGet, "/readyz", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *APITestSuite) TestSaveListGetDelete() {
	filename := s.saveSet("Unit 1", "abandon", "benevolent")
	s.Equal("unit_1.json", filename)

	rec := s.do(http.MethodGet, "/api/vocabulary-files", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list struct {
		Files []models.VocabularySetInfo `json:"files"`
	}
	s.decode(rec, &list)
	s.Require().Len(list.Files, 1)
	s.Equal(2, list.Files[0].WordCount)

	rec = s.do(http.MethodGet, "/api/vocabulary-files/unit_1.json", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var file vocabularyFileResponse
	s.decode(rec, &file)
	s.Equal(2, file.WordCount)
	s.Equal("abandon", file.Vocabulary[0].Word)

	rec = s.do(http.MethodDelete, "/api/vocabulary-files/unit_1.json", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/vocabulary-files/unit_1.json", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("NOT_FOUND", s.errorCode(rec))
}

func (s *APITestSuite) TestSave_DuplicateIsConflict() {
	s.saveSet("dup", "a")

	rec := s.do(http.MethodPost, "/api/save-vocabulary", map[string]any{
		"filename":   "dup",
		"vocabulary": []map[string]string{{"word": "b"}},
	})
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("CONFLICT", s.errorCode(rec))

	rec = s.do(http.MethodPost, "/api/save-vocabulary", map[string]any{
		"filename":   "dup",
		"vocabulary": []map[string]string{{"word": "b"}},
		"overwrite":  true,
	})
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *APITestSuite) TestSave_EmptyVocabulary() {
	rec := s.do(http.MethodPost, "/api/save-vocabulary", `{"filename":"empty","vocabulary":[]}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var resp saveVocabularyResponse
	s.decode(rec, &resp)
	s.Equal("empty.json", resp.Filename)
	s.Equal(0, resp.WordCount)

	rec = s.do(http.MethodGet, "/api/vocabulary-files/empty.json", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, string(s.field(rec, "vocabulary")))
}

func (s *APITestSuite) TestSave_NullFieldsStayNull() {
	rec := s.do(http.MethodPost, "/api/save-vocabulary",
		`{"filename":"nulls","vocabulary":[{"word":"brisk","phonetic":null,"meaning_en":"quick"}]}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/vocabulary-files/nulls.json", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"word":"brisk","phonetic":null,"partOfSpeech":null,"meaning_en":"quick","meaning_vi":null,"context":null,"example":null}]`,
		string(s.field(rec, "vocabulary")))
}

func (s *APITestSuite) TestSave_Validation() {
	tests := []struct {
		name string
		body any
		code string
	}{
		{"malformed json", "{", "BAD_REQUEST"},
		{"empty body", "", "BAD_REQUEST"},
		{"blank filename", map[string]any{"filename": "  ", "vocabulary": []map[string]string{{"word": "a"}}}, "VALIDATION_ERROR"},
		{"no vocabulary", map[string]any{"filename": "x"}, "VALIDATION_ERROR"},
		{"entry without word", map[string]any{"filename": "x", "vocabulary": []map[string]string{{"phonetic": "/x/"}}}, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(http.MethodPost, "/api/save-vocabulary", tt.body)
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(tt.code, s.errorCode(rec))
		})
	}
}

func (s *APITestSuite) TestStudyFlow() {
	filename := s.saveSet("week one", "abandon")

	rec := s.do(http.MethodGet, "/api/study/today", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var view models.TodayView
	s.decode(rec, &view)
	s.Equal("2024-01-02", view.Today.String())
	s.Equal(1, view.Summary.New)

	rec = s.do(http.MethodPost, "/api/study/mark-studied", map[string]any{"filename": filename, "isFirstTime": true})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var marked markStudiedResponse
	s.decode(rec, &marked)
	s.True(marked.Success)
	s.Require().NotNil(marked.Schedule)
	s.Equal("2024-01-02", marked.Schedule.FirstStudyDate.String())
	s.Len(marked.Schedule.ReviewDates, 4)

	rec = s.do(http.MethodPost, "/api/study/mark-studied", map[string]any{"filename": filename, "isFirstTime": true})
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("PRECONDITION_FAILED", s.errorCode(rec))

	rec = s.do(http.MethodGet, "/api/study/today?date=2024-01-03", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &view)
	s.Require().Len(view.ReviewFiles, 1)
	s.Equal(models.ReviewTypeDay2, view.ReviewFiles[0].ReviewType)

	rec = s.do(http.MethodGet, "/api/study/history/"+filename+"?date=2024-01-05", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var history struct {
		Status          string   `json:"status"`
		UpcomingReviews []string `json:"upcomingReviews"`
	}
	s.decode(rec, &history)
	s.Equal(models.HistoryStatusStudied, history.Status)
	s.Equal([]string{"2024-01-05", "2024-01-08", "2024-01-15"}, history.UpcomingReviews)
}

func (s *APITestSuite) TestStudy_Errors() {
	rec := s.do(http.MethodGet, "/api/study/today?date=01/02/2024", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_ERROR", s.errorCode(rec))

	rec = s.do(http.MethodPost, "/api/study/mark-studied", map[string]any{"isFirstTime": true})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_ERROR", s.errorCode(rec))

	rec = s.do(http.MethodPost, "/api/study/mark-studied", map[string]any{"filename": "missing.json"})
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/study/history/never.json", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var history models.StudyHistory
	s.decode(rec, &history)
	s.Equal(models.HistoryStatusNeverStudied, history.Status)
}

func (s *APITestSuite) TestExtract() {
	s.gen.On("Generate", mock.Anything, mock.Anything).
		Return("```json\n[{\"word\":\"ubiquitous\",\"partOfSpeech\":\"adjective\"}]\n```", nil).Once()

	rec := s.do(http.MethodPost, "/api/extract", map[string]any{"passage": "Phones are ubiquitous.", "wordCount": "lots"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var result models.ExtractionResult
	s.decode(rec, &result)
	s.False(result.IsMockData)
	s.Require().Len(result.Vocabulary, 1)
	s.Equal("ubiquitous", result.Vocabulary[0].Word)
	s.gen.AssertExpectations(s.T())
}

func (s *APITestSuite) TestExtract_RateLimited() {
	s.gen.On("Generate", mock.Anything, mock.Anything).Return("", generator.ErrRateLimited).Once()

	rec := s.do(http.MethodPost, "/api/extract", map[string]any{"passage": "text"})
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("60", rec.Header().Get("Retry-After"))
	s.Equal("RATE_LIMITED", s.errorCode(rec))
}

func (s *APITestSuite) TestLookup_RequiresWord() {
	rec := s.do(http.MethodPost, "/api/lookup", map[string]any{"context": "no word here"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_ERROR", s.errorCode(rec))
	s.gen.AssertNotCalled(s.T(), "Generate", mock.Anything, mock.Anything)
}

func (s *APITestSuite) TestUnknownAPIRoute() {
	rec := s.do(http.MethodGet, "/api/nope", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("NOT_FOUND", s.errorCode(rec))
}

func TestExtractRequest_WordCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", services.DefaultWordCount},
		{"null", services.DefaultWordCount},
		{"20", 20},
		{`"12"`, 12},
		{"7.9", 7},
		{`"many"`, services.DefaultWordCount},
		{"true", services.DefaultWordCount},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := extractRequest{WordCount: json.RawMessage(tt.raw)}
			assert.Equal(t, tt.want, req.wordCount())
		})
	}
}

func TestRecoveryMiddleware_ReturnsJSON(t *testing.T) {
	h := recoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL_ERROR"`)
}

func TestStaticHandler_CleanURLs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "study.html"), []byte("<h1>study</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	h := staticHandler(dir)
	for target, want := range map[string]string{"/study": "<h1>study</h1>", "/app.js": "console.log(1)"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, want, rec.Body.String(), target)
	}
}
