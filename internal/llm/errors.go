package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// The four error kinds below are the whole failure taxonomy the rest of the
// app sees from a provider. The retry decorator keys off them: rate limits
// and unavailability are transient, schema failures get a single re-ask,
// truncation is final.

// ErrRateLimit reports a provider 429. RetryAfter, when the provider sent
// one, overrides the backoff schedule for the next attempt.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("llm: rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("llm: rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that failed the request's JSON
// schema (or was not JSON at all). Content keeps the offending payload for
// debug tracing.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("llm: response failed validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports that the provider could not be reached or
// answered with a server-side failure.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm: provider unavailable"
	}
	return fmt.Sprintf("llm: provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a response cut off at the MaxTokens budget.
// Retrying cannot help; the caller has to raise the budget or shrink the
// prompt. Content keeps the truncated payload.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "llm: response truncated at the token budget"
}
