package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if len(mock.Calls) != 3 {
		t.Errorf("attempts = %d, want 3", len(mock.Calls))
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if len(mock.Calls) != 3 {
		t.Errorf("attempts = %d, want 3", len(mock.Calls))
	}
}

func TestRetryInvalidResponseGetsExactlyOneRetry(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad shape")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad shape again")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("attempts = %d, want 2 (one retry for schema failures)", len(mock.Calls))
	}
}

func TestRetryTruncationIsFatal(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("attempts = %d, want 1", len(mock.Calls))
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
