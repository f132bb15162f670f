package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)
	ctx := context.Background()

	for _, want := range []string{`"first"`, `"second"`} {
		resp, err := mock.Generate(ctx, Request{})
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if string(resp.Content) != want {
			t.Errorf("content = %s, want %s", resp.Content, want)
		}
	}

	// Exhausted queue reads as an unavailable provider.
	_, err := mock.Generate(ctx, Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if len(mock.Calls) != 3 {
		t.Errorf("recorded calls = %d, want 3", len(mock.Calls))
	}
}

func TestMockProviderEnforcesRequestSchema(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"score":"high"}`)},
		MockResponse{Content: json.RawMessage(`{"score":90}`)},
	)
	ctx := context.Background()

	// A fixture that drifted from its schema fails like a real response.
	_, err := mock.Generate(ctx, Request{Schema: testSchema})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}

	resp, err := mock.Generate(ctx, Request{Schema: testSchema})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(resp.Content) != `{"score":90}` {
		t.Errorf("content = %s", resp.Content)
	}
}
