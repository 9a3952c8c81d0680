// Package alignment scores resume content against the job description a
// corpus was built with and pulls likely keywords out of the posting.
package alignment

import (
	"context"
	"fmt"

	"github.com/shubham/resume-roaster/internal/corpus"
	"github.com/shubham/resume-roaster/internal/embedding"
	"github.com/shubham/resume-roaster/internal/index"
	"github.com/shubham/resume-roaster/internal/types"
)

// Default analyzer settings.
const (
	// DefaultWeakThreshold marks sections averaging below this cosine
	// similarity as weak.
	DefaultWeakThreshold = 0.5
	// DefaultMaxKeywords caps how many job description terms are returned.
	DefaultMaxKeywords = 20
)

// Analyzer compares a corpus to its job description embedding. The
// embedder is injected so comparisons use the same model that built the
// corpus.
type Analyzer struct {
	embedder      embedding.Embedder
	weakThreshold float64
	maxKeywords   int
}

// NewAnalyzer returns an Analyzer. Non-positive threshold or keyword cap
// fall back to defaults.
func NewAnalyzer(embedder embedding.Embedder, weakThreshold float64, maxKeywords int) *Analyzer {
	if weakThreshold <= 0 {
		weakThreshold = DefaultWeakThreshold
	}
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	return &Analyzer{embedder: embedder, weakThreshold: weakThreshold, maxKeywords: maxKeywords}
}

// CompareToJD measures how well each resume section matches the job
// description. It returns nil without error when the corpus has no job
// description embedding or no resume content to compare; both mean
// "nothing to align", not a failure.
//
// Resume chunk texts are re-embedded and normalized, then scored by
// cosine similarity against the normalized job description embedding.
// OverallMatch is the mean across chunks scaled to 0-100; SectionScores
// hold raw 0-1 per-section means; WeakSections lists sections under the
// threshold in first-appearance order.
func (a *Analyzer) CompareToJD(ctx context.Context, c *corpus.Corpus) (*types.AlignmentReport, error) {
	if c.JDEmbedding == nil {
		return nil, nil
	}

	var resumeChunks []types.Chunk
	for _, chunk := range c.Meta {
		if chunk.IsResumeContent() {
			resumeChunks = append(resumeChunks, chunk)
		}
	}
	if len(resumeChunks) == 0 {
		return nil, nil
	}

	texts := make([]string, len(resumeChunks))
	for i, chunk := range resumeChunks {
		texts[i] = chunk.Text
	}

	vecs, err := a.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume chunks: %w", err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vecs), len(texts))
	}
	embedding.NormalizeAll(vecs)

	jd := make([]float32, len(c.JDEmbedding))
	copy(jd, c.JDEmbedding)
	embedding.Normalize(jd)

	var overall float64
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for i, chunk := range resumeChunks {
		if len(vecs[i]) != len(jd) {
			return nil, &index.DimensionError{Got: len(vecs[i]), Want: len(jd)}
		}
		sim := float64(embedding.Dot(vecs[i], jd))
		overall += sim

		if _, ok := sums[chunk.Section]; !ok {
			order = append(order, chunk.Section)
		}
		sums[chunk.Section] += sim
		counts[chunk.Section]++
	}

	report := &types.AlignmentReport{
		OverallMatch:  overall / float64(len(resumeChunks)) * 100,
		SectionScores: make(map[string]float64, len(order)),
	}
	for _, section := range order {
		avg := sums[section] / float64(counts[section])
		report.SectionScores[section] = avg
		if avg < a.weakThreshold {
			report.WeakSections = append(report.WeakSections, section)
		}
	}
	return report, nil
}
