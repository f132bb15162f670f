package llm

import (
	"context"
	"fmt"
)

// NewProvider builds a Provider from configuration, wrapped with the retry
// and (when enabled) debug-tracing decorators.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "deepseek":
		base, err = NewDeepSeekProvider(cfg.DeepSeek)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if cfg.Debug {
		base = WithDebug(base)
	}
	return WithRetry(base, cfg.Retry), nil
}
