package embedding

import (
	"context"
	"fmt"
)

// Provider identifies an embedding backend.
type Provider string

// Provider constants define supported embedding backends.
const (
	// ProviderGemini is the Google Gemini embedding backend.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI embedding backend.
	ProviderOpenAI Provider = "openai"
	// ProviderMock is the local deterministic backend, useful offline and in tests.
	ProviderMock Provider = "mock"
)

// Config selects the embedding backend and model.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    GeminiEmbeddingModel,
	}
}

// NewEmbedder creates an embedder for the configured provider. The API key
// belongs to that provider; the mock backend ignores it.
func NewEmbedder(ctx context.Context, config *Config, apiKey string) (Embedder, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIEmbedder(config.Model, apiKey)
	case ProviderMock:
		return NewMockEmbedder(MockDimension), nil
	case ProviderGemini:
		return NewGeminiEmbedder(ctx, config.Model, apiKey)
	default:
		return nil, fmt.Errorf("%w: unknown embedding provider %q", ErrModelUnavailable, config.Provider)
	}
}
