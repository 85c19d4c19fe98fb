package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/generator"
	"github.com/vytor/vocabflash/internal/services"
	"github.com/vytor/vocabflash/internal/testutil/mocks"
)

func TestClampWordCount(t *testing.T) {
	tests := map[int]int{0: 15, 1: 5, 5: 5, 20: 20, 30: 30, 99: 30, -4: 5}
	for in, want := range tests {
		assert.Equal(t, want, services.ClampWordCount(in), "input %d", in)
	}
}

func TestExtractionService_MockModeWithoutGenerator(t *testing.T) {
	svc, err := services.NewExtractionService(nil)
	require.NoError(t, err)

	extracted, err := svc.Extract(context.Background(), "Some passage.", 10)
	require.NoError(t, err)
	assert.True(t, extracted.IsMockData)
	assert.Len(t, extracted.Vocabulary, 3)

	looked, err := svc.Lookup(context.Background(), "  serendipity ", "")
	require.NoError(t, err)
	assert.True(t, looked.IsMockData)
	assert.Equal(t, "serendipity", looked.Vocabulary.Word)
}

func TestExtractionService_Extract(t *testing.T) {
	tests := []struct {
		name     string
		response string
		genErr   error
		wantLen  int
		wantCode string
	}{
		{
			name:     "plain array",
			response: `[{"word":"abandon","meaning_en":"leave"},{"word":"ability","phonetic":null}]`,
			wantLen:  2,
		},
		{
			name:     "fenced array",
			response: "```json\n[{\"word\":\"abandon\"}]\n```",
			wantLen:  1,
		},
		{name: "object instead of array", response: `{"word":"abandon"}`, wantCode: errors.ErrCodeUpstreamMalformed},
		{name: "entry without word", response: `[{"phonetic":"x"}]`, wantCode: errors.ErrCodeUpstreamMalformed},
		{name: "not json", response: `Sure! Here are your words`, wantCode: errors.ErrCodeUpstreamMalformed},
		{name: "rate limited", genErr: fmt.Errorf("%w: quota", generator.ErrRateLimited), wantCode: errors.ErrCodeRateLimited},
		{name: "rejected", genErr: fmt.Errorf("%w: status 403", generator.ErrRejected), wantCode: errors.ErrCodeUpstreamRejected},
		{name: "unavailable", genErr: fmt.Errorf("%w: 503", generator.ErrUnavailable), wantCode: errors.ErrCodeUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(mocks.MockGenerator)
			gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
				return strings.Contains(p, "Extract 5 words") && strings.Contains(p, "The passage.")
			})).Return(tt.response, tt.genErr)
			svc, err := services.NewExtractionService(gen)
			require.NoError(t, err)

			result, err := svc.Extract(context.Background(), "The passage.", 2)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.False(t, result.IsMockData)
			assert.Len(t, result.Vocabulary, tt.wantLen)
			assert.Equal(t, "abandon", result.Vocabulary[0].Word)
			gen.AssertExpectations(t)
		})
	}
}

func TestExtractionService_ExtractRequiresPassage(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc, err := services.NewExtractionService(gen)
	require.NoError(t, err)

	_, err = svc.Extract(context.Background(), "   ", 10)

	assert.Equal(t, errors.ErrCodeValidation, errors.CodeOf(err))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestExtractionService_Lookup(t *testing.T) {
	gen := new(mocks.MockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, `"ubiquitous"`) && strings.Contains(p, "use the provided context sentence")
	})).Return("```json\n{\"word\":\"ubiquitous\",\"meaning_vi\":\"phổ biến\"}\n```", nil).Once()
	gen.On("Generate", mock.Anything, mock.Anything).Return(`[{"word":"x"}]`, nil).Once()
	svc, err := services.NewExtractionService(gen)
	require.NoError(t, err)

	result, err := svc.Lookup(context.Background(), "ubiquitous", "Phones are ubiquitous.")
	require.NoError(t, err)
	assert.Equal(t, "ubiquitous", result.Vocabulary.Word)
	require.NotNil(t, result.Vocabulary.MeaningVI)
	assert.Equal(t, "phổ biến", *result.Vocabulary.MeaningVI)
	assert.Nil(t, result.Vocabulary.Phonetic)

	_, err = svc.Lookup(context.Background(), "other", "")
	assert.Equal(t, errors.ErrCodeUpstreamMalformed, errors.CodeOf(err))

	_, err = svc.Lookup(context.Background(), "", "")
	assert.Equal(t, errors.ErrCodeValidation, errors.CodeOf(err))
}
