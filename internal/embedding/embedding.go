// Package embedding turns text into fixed-dimension vectors behind a single
// batch-oriented interface with pluggable backends.
package embedding

import (
	"context"
	"fmt"
	"math"
)

// ErrModelUnavailable is returned when the embedding backend cannot be
// constructed or fails to encode. Operations depending on embeddings fail
// with this error rather than returning empty vectors.
var ErrModelUnavailable = fmt.Errorf("embedding model unavailable")

// Embedder encodes batches of text into fixed-dimension vectors.
// Implementations return exactly one vector per input, in input order.
type Embedder interface {
	// Embed encodes texts into vectors. Encoding failures wrap ErrModelUnavailable.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Dimension returns the vector width this backend produces.
	Dimension() int
}

// Normalize scales v to unit L2 length in place so inner product equals
// cosine similarity. Zero vectors are left unchanged.
func Normalize(v []float32) {
	var sum float32
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	inv := float32(1.0 / math.Sqrt(float64(sum)))
	for i := range v {
		v[i] *= inv
	}
}

// NormalizeAll normalizes every vector in place.
func NormalizeAll(vecs [][]float32) {
	for _, v := range vecs {
		Normalize(v)
	}
}

// Dot returns the inner product of two equal-length vectors. For
// normalized vectors this is their cosine similarity.
func Dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
