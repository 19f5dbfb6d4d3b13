// Package embed provides the embedding client used for knowledge retrieval
// queries.
package embed

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client produces embeddings for retrieval queries.
type Client interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// OpenAIClient implements Client on the OpenAI embeddings endpoint.
type OpenAIClient struct {
	api   openai.Client
	model string
}

// NewOpenAIClient builds an embedding client.
func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("embed: api key is required")
	}
	if model == "" {
		return nil, errors.New("embed: model is required")
	}
	return &OpenAIClient{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: model,
	}, nil
}

// Embed returns the embedding vector for text.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("embedding response contained no data")
	}
	vec := make([]float32, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float32(v)
	}
	return vec, nil
}
