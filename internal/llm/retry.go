package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider retries transient failures with exponential backoff and
// jitter.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	schemaRetried := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &schemaRetried) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

// retryable classifies errors. Schema-invalid responses get exactly one
// retry; truncation and cancellation none; everything else is treated as
// transient.
func retryable(err error, schemaRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *schemaRetried {
			return false
		}
		*schemaRetried = true
		return true
	}
	return true
}

func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	w := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if w > float64(r.cfg.MaxWait) {
		w = float64(r.cfg.MaxWait)
	}
	// ±20% jitter.
	w += w * 0.2 * (2*rand.Float64() - 1)
	if w < 0 {
		w = 0
	}
	return time.Duration(w)
}
