package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vytor/vocabflash/internal/logger"
	"resty.dev/v3"
)

// DefaultGeminiBaseURL is the public Generative Language API endpoint.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

type Gemini struct {
	httpClient *resty.Client
	model      string
}

// NewGemini creates a Gemini client. An empty baseURL selects the public API.
func NewGemini(apiKey, model, baseURL string, timeout time.Duration) *Gemini {
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("x-goog-api-key", apiKey)
	client.SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Gemini{httpClient: client, model: model}
}

func (g *Gemini) Close() error {
	return g.httpClient.Close()
}

// Model returns the configured model name.
func (g *Gemini) Model() string {
	return g.model
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("gemini").WithField("model", g.model)
	start := time.Now()

	body := generateRequest{Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}}}
	response, err := g.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&generateResponse{}).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		log.Warn("request failed after %v: %v", time.Since(start), err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if response.IsError() {
		status := response.StatusCode()
		msg := providerMessage(response.String())
		log.Warn("provider returned %d after %v: %s", status, time.Since(start), msg)
		if status == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %s", ErrRateLimited, msg)
		}
		if status < http.StatusInternalServerError {
			return "", fmt.Errorf("%w: status %d: %s", ErrRejected, status, msg)
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, status, msg)
	}

	result, _ := response.Result().(*generateResponse)
	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrMalformed)
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty candidate text (finish reason %q)", ErrMalformed, result.Candidates[0].FinishReason)
	}

	log.Debug("generated %d chars in %v", len(text), time.Since(start))
	return text, nil
}

func providerMessage(raw string) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal([]byte(raw), &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	raw = strings.TrimSpace(raw)
	if len(raw) > 200 {
		raw = raw[:200]
	}
	if raw == "" {
		return "empty error body"
	}
	return raw
}
