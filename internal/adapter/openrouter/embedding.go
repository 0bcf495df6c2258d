package openrouter

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey is returned when a request is attempted without a
// configured OpenRouter credential.
var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY is not set")

type EmbeddingClient struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewEmbeddingClient creates an embedding client pointed at OpenRouter.
func NewEmbeddingClient(apiKey, baseURL, model string) *EmbeddingClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &EmbeddingClient{
		client: openai.NewClientWithConfig(cfg),
		apiKey: apiKey,
		model:  model,
	}
}

// EmbedBatch embeds all texts in a single request, one vector per text.
func (c *EmbeddingClient) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, err
	}

	vectors := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		embedding := make([]float32, len(data.Embedding))
		copy(embedding, data.Embedding)
		vectors[i] = embedding
	}
	return vectors, nil
}

// EmbedQuery embeds a single query string.
func (c *EmbeddingClient) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, errors.New("no embedding returned for query")
	}
	return vectors[0], nil
}

func (c *EmbeddingClient) Model() string { return c.model }
