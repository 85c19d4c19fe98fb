package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/generator"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/models"
	"github.com/xeipuuv/gojsonschema"
)

const (
	DefaultWordCount = 15
	MinWordCount     = 5
	MaxWordCount     = 30

	mockMessage = "language model API key not configured, using sample data"
)

const wordEntrySchema = `{
	"type": "object",
	"required": ["word"],
	"properties": {
		"word":         {"type": "string", "minLength": 1},
		"phonetic":     {"type": ["string", "null"]},
		"partOfSpeech": {"type": ["string", "null"]},
		"meaning_en":   {"type": ["string", "null"]},
		"meaning_vi":   {"type": ["string", "null"]},
		"context":      {"type": ["string", "null"]},
		"example":      {"type": ["string", "null"]}
	}
}`

var (
	entrySchema = gojsonschema.NewStringLoader(wordEntrySchema)
	listSchema  = gojsonschema.NewStringLoader(`{"type": "array", "items": ` + wordEntrySchema + `}`)

	markdownFence = regexp.MustCompile("```(?:json)?\\n?")
)

// ExtractionService turns passages and words into vocabulary entries
type ExtractionService interface {
	Extract(ctx context.Context, passage string, wordCount int) (*models.ExtractionResult, error)
	Lookup(ctx context.Context, word, sentence string) (*models.LookupResult, error)
}

type extractionService struct {
	gen        generator.Generator
	listSchema *gojsonschema.Schema
	itemSchema *gojsonschema.Schema
}

// NewExtractionService creates a new ExtractionService. A nil generator
// serves sample data.
func NewExtractionService(gen generator.Generator) (ExtractionService, error) {
	list, err := gojsonschema.NewSchema(listSchema)
	if err != nil {
		return nil, fmt.Errorf("compile vocabulary list schema: %w", err)
	}
	item, err := gojsonschema.NewSchema(entrySchema)
	if err != nil {
		return nil, fmt.Errorf("compile word entry schema: %w", err)
	}
	return &extractionService{gen: gen, listSchema: list, itemSchema: item}, nil
}

// ClampWordCount applies the default and the [MinWordCount, MaxWordCount] bounds.
func ClampWordCount(n int) int {
	if n == 0 {
		n = DefaultWordCount
	}
	return max(MinWordCount, min(MaxWordCount, n))
}

func (s *extractionService) Extract(ctx context.Context, passage string, wordCount int) (*models.ExtractionResult, error) {
	log := logger.FromContext(ctx).WithPrefix("extraction")

	if strings.TrimSpace(passage) == "" {
		return nil, errors.NewValidationError("passage", "is required")
	}
	count := ClampWordCount(wordCount)

	if s.gen == nil {
		log.Info("no generator configured, returning sample vocabulary")
		return &models.ExtractionResult{Vocabulary: mockVocabulary(), IsMockData: true, Message: mockMessage}, nil
	}

	text, err := s.gen.Generate(ctx, extractPrompt(passage, count))
	if err != nil {
		log.Error("vocabulary extraction failed: %v", err)
		return nil, generatorError(err)
	}

	text = stripFences(text)
	if err := validateJSON(s.listSchema, text); err != nil {
		log.WithField("response", truncate(text, 300)).Warn("unusable extraction response: %v", err)
		return nil, errors.NewUpstreamMalformedError(err)
	}
	var entries []models.WordEntry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return nil, errors.NewUpstreamMalformedError(err)
	}

	log.Info("extracted %d words (requested %d)", len(entries), count)
	return &models.ExtractionResult{Vocabulary: entries}, nil
}

func (s *extractionService) Lookup(ctx context.Context, word, sentence string) (*models.LookupResult, error) {
	log := logger.FromContext(ctx).WithPrefix("extraction").WithField("word", word)

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, errors.NewValidationError("word", "is required")
	}

	if s.gen == nil {
		return &models.LookupResult{Vocabulary: mockLookup(word, sentence), IsMockData: true, Message: mockMessage}, nil
	}

	text, err := s.gen.Generate(ctx, lookupPrompt(word, sentence))
	if err != nil {
		log.Error("word lookup failed: %v", err)
		return nil, generatorError(err)
	}

	text = stripFences(text)
	if err := validateJSON(s.itemSchema, text); err != nil {
		log.WithField("response", truncate(text, 300)).Warn("unusable lookup response: %v", err)
		return nil, errors.NewUpstreamMalformedError(err)
	}
	var entry models.WordEntry
	if err := json.Unmarshal([]byte(text), &entry); err != nil {
		return nil, errors.NewUpstreamMalformedError(err)
	}
	return &models.LookupResult{Vocabulary: entry}, nil
}

func stripFences(text string) string {
	return strings.TrimSpace(markdownFence.ReplaceAllString(text, ""))
}

func validateJSON(schema *gojsonschema.Schema, doc string) error {
	if !json.Valid([]byte(doc)) {
		return fmt.Errorf("response is not valid JSON")
	}
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("validate response: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
		if len(msgs) == 3 {
			break
		}
	}
	return fmt.Errorf("response does not match schema: %s", strings.Join(msgs, "; "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
