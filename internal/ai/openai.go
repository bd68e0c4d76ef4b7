package ai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIProvider implements Provider on top of any OpenAI-compatible API.
type OpenAIProvider struct {
	client      *openai.LLM
	temperature float64
	maxTokens   int
}

// NewOpenAIProvider creates a provider for the given endpoint and model.
func NewOpenAIProvider(apiKey, baseURL, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIProvider{
		client:      client,
		temperature: 0.7,
		maxTokens:   1500,
	}, nil
}

func toContent(messages []Message) []llms.MessageContent {
	content := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		var msgType llms.ChatMessageType
		switch msg.Role {
		case "system":
			msgType = llms.ChatMessageTypeSystem
		case "assistant":
			msgType = llms.ChatMessageTypeAI
		default:
			msgType = llms.ChatMessageTypeHuman
		}
		content[i] = llms.TextParts(msgType, msg.Content)
	}
	return content
}

// Complete generates a single completion for the conversation.
func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	response, err := p.client.GenerateContent(ctx, toContent(messages),
		llms.WithMaxTokens(p.maxTokens),
		llms.WithTemperature(p.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}
	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return response.Choices[0].Content, nil
}

// StreamComplete generates a completion, delivering chunks as they arrive.
func (p *OpenAIProvider) StreamComplete(ctx context.Context, messages []Message, onChunk func(string) error) error {
	_, err := p.client.GenerateContent(ctx, toContent(messages),
		llms.WithMaxTokens(p.maxTokens),
		llms.WithTemperature(p.temperature),
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			return onChunk(string(chunk))
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to stream completion: %w", err)
	}
	return nil
}
