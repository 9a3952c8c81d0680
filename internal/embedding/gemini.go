package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// GeminiEmbeddingModel is the default Gemini embedding model.
const GeminiEmbeddingModel = "text-embedding-004"

const (
	// geminiEmbeddingDim is the output width of text-embedding-004.
	geminiEmbeddingDim = 768
	// geminiBatchLimit is the API maximum of contents per batch request.
	geminiBatchLimit = 100
	// geminiConcurrency bounds parallel batch requests.
	geminiConcurrency = 4
)

// GeminiEmbedder encodes text with the Gemini embedding API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
	dim    int
}

// NewGeminiEmbedder creates a Gemini-backed embedder. An empty model uses
// GeminiEmbeddingModel.
func NewGeminiEmbedder(ctx context.Context, model, apiKey string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrModelUnavailable)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	if model == "" {
		model = GeminiEmbeddingModel
	}

	return &GeminiEmbedder{
		client: client,
		model:  model,
		dim:    geminiEmbeddingDim,
	}, nil
}

// Embed encodes texts in sub-batches of up to geminiBatchLimit, issued with
// bounded parallelism. Output order matches input order.
func (e *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	model := e.client.EmbeddingModel(e.model)
	out := make([][]float32, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(geminiConcurrency)

	for start := 0; start < len(texts); start += geminiBatchLimit {
		end := start + geminiBatchLimit
		if end > len(texts) {
			end = len(texts)
		}
		start, end := start, end

		g.Go(func() error {
			batch := model.NewBatch()
			for _, text := range texts[start:end] {
				batch = batch.AddContent(genai.Text(text))
			}

			resp, err := model.BatchEmbedContents(ctx, batch)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrModelUnavailable, err)
			}
			if len(resp.Embeddings) != end-start {
				return fmt.Errorf("%w: got %d embeddings for %d inputs",
					ErrModelUnavailable, len(resp.Embeddings), end-start)
			}

			for i, emb := range resp.Embeddings {
				out[start+i] = emb.Values
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Dimension returns the embedding dimension.
func (e *GeminiEmbedder) Dimension() int {
	return e.dim
}

// Close releases the underlying API client.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
