package openrouter

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	answerMaxTokens   = 1000
	answerTemperature = 0.3
)

type ChatClient struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewChatClient creates a completion client pointed at OpenRouter.
func NewChatClient(apiKey, baseURL, model string) *ChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &ChatClient{
		client: openai.NewClientWithConfig(cfg),
		apiKey: apiKey,
		model:  model,
	}
}

// GenerateAnswer sends the system instruction and user prompt to the
// model and returns the completion text.
func (c *ChatClient) GenerateAnswer(ctx context.Context, system, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *ChatClient) Model() string { return c.model }
