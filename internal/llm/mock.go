package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply for the MockProvider: either Content or
// Err, never both.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is the deterministic in-memory Provider used by tests. It
// replays canned responses in FIFO order and records every request. It
// holds canned content to the same structured-output contract as the live
// adapters: when the request carries a schema, the content is validated
// against it, so a test fixture that drifts from its schema fails the same
// way a real model response would.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse

	// Calls records every request seen, in order.
	Calls []Request
}

// NewMockProvider creates a MockProvider preloaded with responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// AddResponse queues another canned response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// Generate replays the next canned response. An exhausted queue reads as an
// unavailable provider.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.responses[0]
	m.responses = m.responses[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	if err := validateAgainst(req.Schema, next.Content); err != nil {
		return nil, err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string { return "mock" }
