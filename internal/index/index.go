// Package index provides a flat inner-product vector index with file
// persistence. Vectors are stored exactly as given and never renormalized;
// callers normalize before Add and before Search so inner product equals
// cosine similarity.
package index

import (
	"fmt"
	"sort"
)

// ErrDimensionMismatch is returned when a vector's width disagrees with
// the dimension established by the first Add. It usually means a
// different embedding model was used at build and query time.
var ErrDimensionMismatch = fmt.Errorf("vector dimension mismatch")

// DimensionError carries the disagreeing widths behind ErrDimensionMismatch.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("vector dimension mismatch: got %d, want %d", e.Got, e.Want)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// Hit is one search result: a stored vector's position and its raw
// inner-product score against the query.
type Hit struct {
	Position int
	Score    float32
}

// Flat is an append-only brute-force inner-product index over
// fixed-dimension vectors.
type Flat struct {
	dim     int
	vectors [][]float32
}

// New creates an empty index. The dimension is established by the first Add.
func New() *Flat {
	return &Flat{}
}

// Add appends vectors to the index. All vectors in all calls must share
// one dimension; any disagreement rejects the whole call, leaving the
// index unchanged. Vectors are never truncated or padded.
func (x *Flat) Add(vectors [][]float32) error {
	if len(vectors) == 0 {
		return nil
	}

	dim := x.dim
	if dim == 0 {
		dim = len(vectors[0])
	}
	if dim == 0 {
		return fmt.Errorf("%w: empty vector", ErrDimensionMismatch)
	}

	for _, v := range vectors {
		if len(v) != dim {
			return &DimensionError{Got: len(v), Want: dim}
		}
	}

	x.dim = dim
	x.vectors = append(x.vectors, vectors...)
	return nil
}

// Search returns up to k hits ordered by descending inner-product score,
// ties broken by ascending position. k above the index size is clamped;
// k <= 0 or an empty index yields no hits, not an error.
func (x *Flat) Search(query []float32, k int) ([]Hit, error) {
	if k <= 0 || len(x.vectors) == 0 {
		return nil, nil
	}
	if len(query) != x.dim {
		return nil, &DimensionError{Got: len(query), Want: x.dim}
	}

	hits := make([]Hit, len(x.vectors))
	for i, v := range x.vectors {
		hits[i] = Hit{Position: i, Score: dot(v, query)}
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Score != hits[b].Score {
			return hits[a].Score > hits[b].Score
		}
		return hits[a].Position < hits[b].Position
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// Len returns the number of stored vectors.
func (x *Flat) Len() int {
	return len(x.vectors)
}

// Dimension returns the established vector width, or 0 before the first Add.
func (x *Flat) Dimension() int {
	return x.dim
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
