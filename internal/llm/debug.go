package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// debugProvider traces every request to stderr: purpose, model, latency,
// token usage, outcome. Enabled via Config.Debug / FEYNREAD_LLM_DEBUG.
type debugProvider struct {
	inner Provider
}

// WithDebug wraps p with stderr request tracing.
func WithDebug(p Provider) Provider {
	return &debugProvider{inner: p}
}

func (d *debugProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := d.inner.Generate(ctx, req)
	elapsed := time.Since(start).Milliseconds()

	purpose := PurposeFrom(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "llm: %s model=%s %dms error: %v\n", purpose, d.inner.ModelID(), elapsed, err)
		return resp, err
	}
	fmt.Fprintf(os.Stderr, "llm: %s model=%s %dms in=%d out=%d\n",
		purpose, resp.Model, elapsed, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	return resp, nil
}

func (d *debugProvider) ModelID() string { return d.inner.ModelID() }

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label ("teaching-review", "qa-question",
// "phase-analysis", ...) to the context for tracing.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
