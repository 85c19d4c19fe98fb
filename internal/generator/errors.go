package generator

import "errors"

var (
	// ErrRateLimited means the provider rejected the call for quota reasons.
	ErrRateLimited = errors.New("generator rate limited")
	// ErrUnavailable covers transport failures and provider 5xx replies.
	ErrUnavailable = errors.New("generator unavailable")
	// ErrRejected means the provider refused the request itself, such as an
	// invalid API key or model name. It is never retried.
	ErrRejected = errors.New("generator request rejected")
	// ErrMalformed means the provider answered without usable text.
	ErrMalformed = errors.New("generator response malformed")
)

// Retryable reports whether a failed call may succeed when repeated.
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnavailable)
}
