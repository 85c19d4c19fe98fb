package generator

import (
	"context"
	"time"

	"github.com/avast/retry-go"
	"github.com/vytor/vocabflash/internal/logger"
)

type retrying struct {
	next     Generator
	attempts uint
	delay    time.Duration
}

// WithRetry wraps next so rate-limited and unavailable calls are repeated
// with exponential backoff starting at delay, for at most attempts calls.
// Rejected and malformed calls fail at once.
func WithRetry(next Generator, attempts uint, delay time.Duration) Generator {
	if attempts < 1 {
		attempts = 1
	}
	return &retrying{next: next, attempts: attempts, delay: delay}
}

func (r *retrying) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("generator")

	var text string
	err := retry.Do(
		func() error {
			out, err := r.next.Generate(ctx, prompt)
			if err != nil {
				return err
			}
			text = out
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(Retryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("attempt %d/%d failed: %v", n+1, r.attempts, err)
		}),
	)
	if err != nil {
		return "", err
	}
	return text, nil
}
