// Package types provides type definitions for structured data used throughout the resume retrieval engine.
package types

// ChunkType identifies the origin of a chunk within the corpus.
type ChunkType string

// Chunk type constants define the three kinds of chunks a build emits.
const (
	// ChunkTypeOverview is the single whole-resume overview chunk (always chunk_id 0).
	ChunkTypeOverview ChunkType = "overview"
	// ChunkTypeSection is a chunk cut from one named resume section.
	ChunkTypeSection ChunkType = "section"
	// ChunkTypeJobDescription is a chunk cut from the target job description.
	ChunkTypeJobDescription ChunkType = "job_description"
)

// SectionOverview and SectionJobDescription are the synthetic section labels
// for chunks that do not originate from a named resume section.
const (
	SectionOverview       = "Resume Overview"
	SectionJobDescription = "Job Description"
)

// Chunk is a contiguous span of source text plus retrieval metadata.
// ChunkID values are dense and monotonically increasing within one build,
// assigned in emission order starting at 0.
type Chunk struct {
	Section   string    `json:"section"`
	ChunkID   int       `json:"chunk_id"`
	Text      string    `json:"text"`
	Type      ChunkType `json:"type"`
	WordCount int       `json:"word_count,omitempty"`
}

// IsResumeContent reports whether the chunk came from the resume itself
// rather than the job description.
func (c *Chunk) IsResumeContent() bool {
	return c.Type == ChunkTypeOverview || c.Type == ChunkTypeSection
}

// ScoredChunk pairs a chunk with its similarity score for one query.
type ScoredChunk struct {
	Chunk
	Similarity float32 `json:"similarity"`
}
