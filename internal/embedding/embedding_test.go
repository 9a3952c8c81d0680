package embedding

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vectorLength(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func TestNormalize_UnitLength(t *testing.T) {
	v := []float32{3, 4}

	Normalize(v)

	assert.InDelta(t, 1.0, vectorLength(v), 1e-6)
	assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v[1]), 1e-6)
}

func TestNormalize_ZeroVectorUnchanged(t *testing.T) {
	v := []float32{0, 0, 0}

	Normalize(v)

	assert.Equal(t, []float32{0, 0, 0}, v)
}

func TestNormalizeAll(t *testing.T) {
	vecs := [][]float32{{1, 1}, {5, 0}}

	NormalizeAll(vecs)

	for _, v := range vecs {
		assert.InDelta(t, 1.0, vectorLength(v), 1e-6)
	}
}

func TestDot_NormalizedIsCosine(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{1, 0}
	c := []float32{0, 1}

	assert.InDelta(t, 1.0, float64(Dot(a, b)), 1e-6)
	assert.InDelta(t, 0.0, float64(Dot(a, c)), 1e-6)
}

func TestMockEmbedder_Deterministic(t *testing.T) {
	emb := NewMockEmbedder(0)
	texts := []string{"distributed systems engineering", "reading novels by the lake"}

	first, err := emb.Embed(context.Background(), texts)
	require.NoError(t, err)
	second, err := emb.Embed(context.Background(), texts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
	assert.Len(t, first[0], MockDimension)
}

func TestMockEmbedder_SimilarityStructure(t *testing.T) {
	emb := NewMockEmbedder(0)

	vecs, err := emb.Embed(context.Background(), []string{
		"distributed systems engineering with kubernetes",
		"distributed systems engineering with kubernetes",
		"watercolor painting and hiking trails",
	})
	require.NoError(t, err)

	// Identical texts embed identically; disjoint vocabulary scores near zero.
	assert.InDelta(t, 1.0, float64(Dot(vecs[0], vecs[1])), 1e-5)
	assert.Less(t, float64(Dot(vecs[0], vecs[2])), 0.3)
}

func TestMockEmbedder_NormalizedOutput(t *testing.T) {
	emb := NewMockEmbedder(64)

	vecs, err := emb.Embed(context.Background(), []string{"go developer"})
	require.NoError(t, err)
	require.Len(t, vecs, 1)

	assert.Len(t, vecs[0], 64)
	assert.InDelta(t, 1.0, vectorLength(vecs[0]), 1e-5)
}

func TestNewEmbedder_MockProvider(t *testing.T) {
	emb, err := NewEmbedder(context.Background(), &Config{Provider: ProviderMock}, "")
	require.NoError(t, err)

	assert.IsType(t, &MockEmbedder{}, emb)
	assert.Equal(t, MockDimension, emb.Dimension())
}

func TestNewEmbedder_MissingAPIKey(t *testing.T) {
	_, err := NewEmbedder(context.Background(), &Config{Provider: ProviderGemini}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModelUnavailable))

	_, err = NewEmbedder(context.Background(), &Config{Provider: ProviderOpenAI}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModelUnavailable))
}

func TestNewEmbedder_UnknownProvider(t *testing.T) {
	_, err := NewEmbedder(context.Background(), &Config{Provider: "tfidf"}, "key")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModelUnavailable))
	assert.Contains(t, err.Error(), "unknown embedding provider")
}

func TestNewOpenAIEmbedder_ModelDimensions(t *testing.T) {
	small, err := NewOpenAIEmbedder("", "test-key")
	require.NoError(t, err)
	assert.Equal(t, 1536, small.Dimension())

	large, err := NewOpenAIEmbedder("text-embedding-3-large", "test-key")
	require.NoError(t, err)
	assert.Equal(t, 3072, large.Dimension())
}

func TestNewGeminiEmbedder_DefaultModel(t *testing.T) {
	emb, err := NewGeminiEmbedder(context.Background(), "", "test-key")
	require.NoError(t, err)
	defer func() { _ = emb.Close() }()

	assert.Equal(t, GeminiEmbeddingModel, emb.model)
	assert.Equal(t, 768, emb.Dimension())
}
