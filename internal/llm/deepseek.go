package llm

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DeepSeekProvider implements Provider over DeepSeek's OpenAI-compatible
// API. DeepSeek has no strict json_schema response format, so structured
// requests use JSON-object mode with the schema spelled out in the system
// prompt and the output validated locally.
type DeepSeekProvider struct {
	client *openai.Client
	model  string
}

// NewDeepSeekProvider creates a DeepSeek provider.
func NewDeepSeekProvider(cfg DeepSeekConfig) (*DeepSeekProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepseek API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	if clientCfg.BaseURL == "" {
		clientCfg.BaseURL = "https://api.deepseek.com/v1"
	}

	model := cfg.Model
	if model == "" {
		model = "deepseek-chat"
	}

	return &DeepSeekProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

func (p *DeepSeekProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	system := req.System
	if req.Schema != nil {
		schemaBytes, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema: %w", err)
		}
		system = fmt.Sprintf(
			"%s\n\nRespond with a single JSON object conforming to this JSON Schema, with no surrounding text:\n%s",
			system, schemaBytes)
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    openAIMessages(Request{System: system, Messages: req.Messages}),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}
	if req.Schema != nil {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in response")}
	}

	choice := resp.Choices[0]
	content := json.RawMessage(choice.Message.Content)

	if choice.FinishReason == openai.FinishReasonLength {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := validateAgainst(req.Schema, content); err != nil {
		return nil, err
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      resp.Model,
		StopReason: "end",
	}, nil
}

func (p *DeepSeekProvider) ModelID() string { return p.model }
