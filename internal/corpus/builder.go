package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shubham/resume-roaster/internal/chunker"
	"github.com/shubham/resume-roaster/internal/embedding"
	"github.com/shubham/resume-roaster/internal/index"
	"github.com/shubham/resume-roaster/internal/types"
)

// Default chunking parameters for a corpus build.
const (
	// DefaultJDMaxWords is the window size for job description chunks,
	// cut without overlap.
	DefaultJDMaxWords = 250
	// DefaultOverviewChars caps how much of the combined resume text goes
	// into the overview chunk.
	DefaultOverviewChars = 1500
)

// Params control how a build cuts source text into chunks.
type Params struct {
	SectionMaxWords int
	SectionOverlap  int
	JDMaxWords      int
	OverviewChars   int
}

// DefaultParams returns the standard chunking parameters.
func DefaultParams() Params {
	return Params{
		SectionMaxWords: chunker.DefaultMaxWords,
		SectionOverlap:  chunker.DefaultOverlap,
		JDMaxWords:      DefaultJDMaxWords,
		OverviewChars:   DefaultOverviewChars,
	}
}

// sanitize replaces out-of-range parameters with defaults so a window
// always advances. An overlap of zero is kept as given.
func (p Params) sanitize() Params {
	if p.SectionMaxWords <= 0 {
		p.SectionMaxWords = chunker.DefaultMaxWords
	}
	if p.SectionOverlap < 0 || p.SectionOverlap >= p.SectionMaxWords {
		p.SectionOverlap = 0
	}
	if p.JDMaxWords <= 0 {
		p.JDMaxWords = DefaultJDMaxWords
	}
	if p.OverviewChars <= 0 {
		p.OverviewChars = DefaultOverviewChars
	}
	return p
}

// Builder turns a resume document and an optional job description into a
// Corpus. It chunks, embeds everything in one batch, normalizes, and
// fills a fresh index, assigning dense chunk IDs in emission order.
type Builder struct {
	embedder embedding.Embedder
	params   Params
}

// NewBuilder returns a Builder using the given embedder and chunking
// parameters. Zero or negative parameters fall back to defaults.
func NewBuilder(embedder embedding.Embedder, params Params) *Builder {
	return &Builder{embedder: embedder, params: params.sanitize()}
}

// Build chunks the document and job description, embeds all chunks in a
// single batch, and assembles a Corpus plus build statistics. An empty
// (or whitespace-only) job description yields a corpus without an
// alignment target. Any embedding failure aborts the build; nothing is
// persisted here.
func (b *Builder) Build(ctx context.Context, doc *types.ResumeDocument, jobDescription string) (*Corpus, *types.BuildStats, error) {
	if doc == nil {
		return nil, nil, fmt.Errorf("resume document is required")
	}
	if err := doc.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid resume document: %w", err)
	}

	chunks := b.cutChunks(doc, jobDescription)

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	// The whole job description rides along as one extra batch entry so
	// a build costs a single embedding call.
	jd := strings.TrimSpace(jobDescription)
	if jd != "" {
		texts = append(texts, jd)
	}

	vectors, err := b.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to embed corpus chunks: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(texts))
	}
	embedding.NormalizeAll(vectors)

	var jdEmbedding []float32
	if jd != "" {
		jdEmbedding = vectors[len(vectors)-1]
		vectors = vectors[:len(vectors)-1]
	}

	idx := index.New()
	if err := idx.Add(vectors); err != nil {
		return nil, nil, fmt.Errorf("failed to index corpus chunks: %w", err)
	}

	c := &Corpus{Index: idx, Meta: chunks, JDEmbedding: jdEmbedding}
	return c, b.stats(doc, c), nil
}

// cutChunks emits the overview chunk, section chunks, and job description
// chunks with sequential IDs starting at 0.
func (b *Builder) cutChunks(doc *types.ResumeDocument, jobDescription string) []types.Chunk {
	var chunks []types.Chunk

	overview := doc.CombinedText
	if runes := []rune(overview); len(runes) > b.params.OverviewChars {
		overview = string(runes[:b.params.OverviewChars])
	}
	if strings.TrimSpace(overview) != "" {
		chunks = append(chunks, types.Chunk{
			Section: types.SectionOverview,
			ChunkID: len(chunks),
			Text:    overview,
			Type:    types.ChunkTypeOverview,
		})
	}

	for _, sec := range doc.Sections {
		for _, piece := range chunker.Split(sec.Text, b.params.SectionMaxWords, b.params.SectionOverlap) {
			chunks = append(chunks, types.Chunk{
				Section:   sec.Name,
				ChunkID:   len(chunks),
				Text:      piece,
				Type:      types.ChunkTypeSection,
				WordCount: chunker.WordCount(piece),
			})
		}
	}

	if jd := strings.TrimSpace(jobDescription); jd != "" {
		for _, piece := range chunker.Split(jd, b.params.JDMaxWords, 0) {
			chunks = append(chunks, types.Chunk{
				Section: types.SectionJobDescription,
				ChunkID: len(chunks),
				Text:    piece,
				Type:    types.ChunkTypeJobDescription,
			})
		}
	}

	return chunks
}

func (b *Builder) stats(doc *types.ResumeDocument, c *Corpus) *types.BuildStats {
	stats := &types.BuildStats{
		BuildID:           uuid.NewString(),
		TotalChunks:       len(c.Meta),
		Dimension:         b.embedder.Dimension(),
		ResumeWords:       doc.TotalWords(),
		HasJobDescription: c.HasJobDescription(),
		HasQuantifiedWork: hasQuantifiedWork(doc.CombinedText),
	}
	for _, sec := range doc.Sections {
		stats.Sections = append(stats.Sections, sec.Name)
	}
	for _, chunk := range c.Meta {
		if chunk.IsResumeContent() {
			stats.ResumeChunks++
		} else {
			stats.JDChunks++
		}
	}
	return stats
}
