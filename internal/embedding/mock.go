package embedding

import (
	"context"
	"hash/fnv"
	"strings"
)

// MockDimension is the default vector width for the mock backend.
const MockDimension = 384

// MockEmbedder produces deterministic embeddings without any network
// dependency: each lowercased token is hashed onto one dimension of a
// bag-of-words vector, which is then L2-normalized. Texts sharing
// vocabulary get high cosine similarity, disjoint texts score near zero,
// which is enough structure for tests and offline runs.
type MockEmbedder struct {
	dim int
}

// NewMockEmbedder creates a mock embedder. Non-positive dimensions use
// MockDimension.
func NewMockEmbedder(dim int) *MockEmbedder {
	if dim <= 0 {
		dim = MockDimension
	}
	return &MockEmbedder{dim: dim}
}

// Embed returns one normalized bag-of-words vector per text.
func (e *MockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v := make([]float32, e.dim)
		for _, token := range strings.Fields(strings.ToLower(text)) {
			token = strings.Trim(token, ".,;:!?()[]{}\"'")
			if token == "" {
				continue
			}
			h := fnv.New32a()
			_, _ = h.Write([]byte(token))
			v[int(h.Sum32())%e.dim]++
		}
		Normalize(v)
		out[i] = v
	}
	return out, nil
}

// Dimension returns the embedding dimension.
func (e *MockEmbedder) Dimension() int {
	return e.dim
}
