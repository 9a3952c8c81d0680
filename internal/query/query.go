// Package query ranks corpus chunks against natural-language queries and
// renders retrieval results as prompt-ready context.
package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/shubham/resume-roaster/internal/corpus"
	"github.com/shubham/resume-roaster/internal/embedding"
	"github.com/shubham/resume-roaster/internal/types"
)

// DefaultOverfetch is how many times k the engine fetches from the index
// when a type filter will discard candidates.
const DefaultOverfetch = 3

// Engine answers similarity queries over a built corpus. The embedder is
// injected so queries use the same model that built the index.
type Engine struct {
	embedder  embedding.Embedder
	overfetch int
}

// NewEngine returns an Engine. overfetch <= 0 falls back to
// DefaultOverfetch.
func NewEngine(embedder embedding.Embedder, overfetch int) *Engine {
	if overfetch <= 0 {
		overfetch = DefaultOverfetch
	}
	return &Engine{embedder: embedder, overfetch: overfetch}
}

// Search embeds the query, normalizes it, and returns up to k chunks by
// descending cosine similarity. A non-empty filter keeps only chunks of
// that type; the engine over-fetches from the index so filtering still
// fills k when enough matches exist. Fewer than k results is a valid
// outcome, not an error.
func (e *Engine) Search(ctx context.Context, c *corpus.Corpus, query string, k int, filter types.ChunkType) ([]types.ScoredChunk, error) {
	if k <= 0 || c.Len() == 0 {
		return nil, nil
	}

	q, err := e.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	fetchK := k
	if filter != "" {
		fetchK = k * e.overfetch
	}

	hits, err := c.Index.Search(q, fetchK)
	if err != nil {
		return nil, fmt.Errorf("index search failed: %w", err)
	}

	results := make([]types.ScoredChunk, 0, k)
	for _, hit := range hits {
		meta := c.Meta[hit.Position]
		if filter != "" && meta.Type != filter {
			continue
		}
		results = append(results, types.ScoredChunk{Chunk: meta, Similarity: hit.Score})
		if len(results) == k {
			break
		}
	}
	return results, nil
}

// RelevantContext retrieves up to k chunks for the query and renders them
// as one display string: each section gets a heading with its best-ranked
// similarity the first time it appears, followed by that section's chunk
// texts in ranked order. With includeJD false only resume section chunks
// are considered; with it true everything in the corpus competes.
func (e *Engine) RelevantContext(ctx context.Context, c *corpus.Corpus, query string, k int, includeJD bool) (string, error) {
	filter := types.ChunkTypeSection
	if includeJD {
		filter = ""
	}

	results, err := e.Search(ctx, c, query, k, filter)
	if err != nil {
		return "", err
	}

	var parts []string
	seen := make(map[string]bool)
	for _, result := range results {
		if !seen[result.Section] {
			parts = append(parts, fmt.Sprintf("\n--- %s (relevance: %.2f) ---", result.Section, result.Similarity))
			seen[result.Section] = true
		}
		parts = append(parts, result.Text)
	}

	return strings.Join(parts, "\n\n"), nil
}

func (e *Engine) embedQuery(ctx context.Context, query string) ([]float32, error) {
	vecs, err := e.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for one query", len(vecs))
	}
	embedding.Normalize(vecs[0])
	return vecs[0], nil
}
