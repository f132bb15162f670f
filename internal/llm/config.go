package llm

import (
	"os"
	"time"
)

// Config selects and configures the LLM provider. The API key normally
// comes from the app settings record; environment variables override for
// development and scripting.
type Config struct {
	// Provider: "deepseek", "openai", "anthropic", "gemini", or "mock".
	Provider string

	DeepSeek  DeepSeekConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration

	// Debug enables request tracing to stderr.
	Debug bool
}

// DeepSeekConfig configures the DeepSeek provider (OpenAI-compatible API).
type DeepSeekConfig struct {
	APIKey  string
	Model   string // default "deepseek-chat"
	BaseURL string // default "https://api.deepseek.com/v1"
}

// OpenAIConfig configures the OpenAI provider.
type OpenAIConfig struct {
	APIKey  string
	Model   string // default "gpt-4o-mini"
	BaseURL string // optional override for compatible APIs
}

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	APIKey string
	Model  string // default "claude-haiku-4-5-20251001"
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string
	Model  string // default "gemini-2.0-flash"
}

// RetryConfig tunes backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. DeepSeek is the
// default provider; its key is filled in from settings by the caller.
func DefaultConfig() Config {
	return Config{
		Provider: "deepseek",
		DeepSeek: DeepSeekConfig{
			Model:   "deepseek-chat",
			BaseURL: "https://api.deepseek.com/v1",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku-4-5-20251001",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv applies FEYNREAD_LLM_* environment overrides on top of the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FEYNREAD_LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("FEYNREAD_LLM_API_KEY"); v != "" {
		cfg.SetAPIKey(v)
	}
	if v := os.Getenv("FEYNREAD_LLM_MODEL"); v != "" {
		cfg.DeepSeek.Model = v
		cfg.OpenAI.Model = v
		cfg.Anthropic.Model = v
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("FEYNREAD_LLM_BASE_URL"); v != "" {
		cfg.DeepSeek.BaseURL = v
		cfg.OpenAI.BaseURL = v
	}
	if os.Getenv("FEYNREAD_LLM_DEBUG") != "" {
		cfg.Debug = true
	}

	return cfg
}

// SetAPIKey sets the same key on every provider, so the single key stored
// in app settings works regardless of the selected provider.
func (c *Config) SetAPIKey(key string) {
	c.DeepSeek.APIKey = key
	c.OpenAI.APIKey = key
	c.Anthropic.APIKey = key
	c.Gemini.APIKey = key
}
