package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham/resume-roaster/internal/embedding"
	"github.com/shubham/resume-roaster/internal/index"
	"github.com/shubham/resume-roaster/internal/types"
)

func buildTestCorpus(t *testing.T, jobDescription string) *Corpus {
	t.Helper()
	b := NewBuilder(embedding.NewMockEmbedder(64), DefaultParams())
	c, _, err := b.Build(context.Background(), testDocument(), jobDescription)
	require.NoError(t, err)
	return c
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	c := buildTestCorpus(t, "Hiring a Go engineer for distributed systems work.")

	require.NoError(t, store.Save(c))

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, c.Meta, loaded.Meta)
	assert.Equal(t, c.Index.Len(), loaded.Index.Len())
	assert.Equal(t, c.Index.Dimension(), loaded.Index.Dimension())

	require.NotNil(t, loaded.JDEmbedding)
	require.Len(t, loaded.JDEmbedding, len(c.JDEmbedding))
	for i := range c.JDEmbedding {
		assert.InDelta(t, float64(c.JDEmbedding[i]), float64(loaded.JDEmbedding[i]), 1e-6)
	}

	query := make([]float32, 64)
	query[3] = 1
	before, err := c.Index.Search(query, 3)
	require.NoError(t, err)
	after, err := loaded.Index.Search(query, 3)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Position, after[i].Position)
		assert.InDelta(t, float64(before[i].Score), float64(after[i].Score), 1e-5)
	}
}

func TestStore_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save(buildTestCorpus(t, "some job description")))

	temps, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, temps)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{IndexArtifact, MetadataArtifact, JDArtifact}, names)
}

func TestStore_Save_RemovesStaleJDEmbedding(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save(buildTestCorpus(t, "a job description")))
	_, err := os.Stat(filepath.Join(dir, JDArtifact))
	require.NoError(t, err)

	require.NoError(t, store.Save(buildTestCorpus(t, "")))
	_, err = os.Stat(filepath.Join(dir, JDArtifact))
	assert.True(t, os.IsNotExist(err), "stale alignment target should be removed")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded.JDEmbedding)
}

func TestStore_Save_RejectsInconsistentCorpus(t *testing.T) {
	store := NewStore(t.TempDir())
	c := buildTestCorpus(t, "")
	c.Meta = c.Meta[:len(c.Meta)-1]

	err := store.Save(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to save")
}

func TestStore_Load_NotFound(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-built"))

	_, err := store.Load()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_Load_MissingMetadataArtifact(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(buildTestCorpus(t, "")))
	require.NoError(t, os.Remove(filepath.Join(dir, MetadataArtifact)))

	_, err := store.Load()

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_Load_CorruptIndex(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(buildTestCorpus(t, "")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexArtifact), []byte("scrambled"), 0644))

	_, err := store.Load()

	var corrupt *CorruptError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, IndexArtifact, corrupt.Artifact)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestStore_Load_MetadataFailsSchemaValidation(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(buildTestCorpus(t, "")))

	// Valid JSON, wrong shape: chunk objects need section/chunk_id/text/type.
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataArtifact), []byte(`[{"text": "orphan"}]`), 0644))

	_, err := store.Load()

	var corrupt *CorruptError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, MetadataArtifact, corrupt.Artifact)
	assert.Contains(t, corrupt.Message, "schema validation")
}

func TestStore_Load_LengthDivergence(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	c := buildTestCorpus(t, "")
	require.NoError(t, store.Save(c))

	truncated := c.Meta[:len(c.Meta)-1]
	data, err := json.MarshalIndent(truncated, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataArtifact), data, 0644))

	_, err = store.Load()

	var corrupt *CorruptError
	require.True(t, errors.As(err, &corrupt))
	assert.Contains(t, corrupt.Message, "chunks")
}

func TestStore_Load_CorruptJDEmbedding(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(buildTestCorpus(t, "a job description")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, JDArtifact), []byte("junk"), 0644))

	_, err := store.Load()

	var corrupt *CorruptError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, JDArtifact, corrupt.Artifact)
}

func TestStore_Load_JDDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(buildTestCorpus(t, "a job description")))
	require.NoError(t, index.WriteVector(filepath.Join(dir, JDArtifact), []float32{1, 0, 0}))

	_, err := store.Load()

	var corrupt *CorruptError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, JDArtifact, corrupt.Artifact)
	assert.Contains(t, corrupt.Message, "dimension")
}

func TestStore_Save_FullReplace(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	first := buildTestCorpus(t, "first job description")
	require.NoError(t, store.Save(first))

	b := NewBuilder(embedding.NewMockEmbedder(64), DefaultParams())
	second, _, err := b.Build(context.Background(), &types.ResumeDocument{
		Sections:     []types.ResumeSection{{Name: "Education", Text: "MS in Computer Science."}},
		CombinedText: "Education. MS in Computer Science.",
	}, "")
	require.NoError(t, err)
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second.Meta, loaded.Meta)
	assert.NotEqual(t, len(first.Meta), len(loaded.Meta))
}
