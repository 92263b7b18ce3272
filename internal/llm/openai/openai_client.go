package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"sofdesk/internal/config"
	"sofdesk/internal/port"
)

// Client implements port.LLMClient using OpenAI's Chat Completions API.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates an OpenAI-backed LLM client.
func NewClient(cfg *config.LLMProviderConfig) (*Client, error) {
	return newClient(cfg, "")
}

// NewClientWithBaseURL creates a client pointing at a custom base URL (for testing).
func NewClientWithBaseURL(cfg *config.LLMProviderConfig, baseURL string) (*Client, error) {
	return newClient(cfg, baseURL)
}

func newClient(cfg *config.LLMProviderConfig, baseURL string) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	model := cfg.DefaultModel
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}, nil
}

// Name identifies the provider.
func (c *Client) Name() string { return "openai" }

// Complete sends a single-turn prompt and returns the model's text.
func (c *Client) Complete(ctx context.Context, input port.CompletionInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{}
	if input.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: input.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("calling openai API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API: no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
