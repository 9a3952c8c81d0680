// Package corpus builds, persists, and loads the searchable resume corpus:
// a flat vector index, the chunk metadata describing each index position,
// and an optional whole-job-description embedding used for alignment.
package corpus

import (
	"errors"
	"fmt"

	"github.com/shubham/resume-roaster/internal/index"
	"github.com/shubham/resume-roaster/internal/types"
)

// ErrNoIndex means a read operation ran before any corpus was built and
// no persisted corpus could be loaded.
var ErrNoIndex = errors.New("no resume corpus available")

// ErrNotFound means a persisted corpus artifact does not exist at the
// expected path.
var ErrNotFound = errors.New("corpus artifact not found")

// CorruptError means a persisted corpus artifact exists but its contents
// are unreadable or fail validation.
type CorruptError struct {
	Artifact string
	Message  string
	Cause    error
}

func (e *CorruptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt corpus artifact %s: %s: %v", e.Artifact, e.Message, e.Cause)
	}
	return fmt.Sprintf("corrupt corpus artifact %s: %s", e.Artifact, e.Message)
}

func (e *CorruptError) Unwrap() error {
	return e.Cause
}

// Corpus is one complete build result. Meta[i] describes the vector at
// index position i, so Index.Len() == len(Meta) always holds. JDEmbedding
// is the normalized whole-job-description vector, nil when the build had
// no job description.
type Corpus struct {
	Index       *index.Flat
	Meta        []types.Chunk
	JDEmbedding []float32
}

// Len returns the number of chunks in the corpus.
func (c *Corpus) Len() int {
	return len(c.Meta)
}

// HasJobDescription reports whether the corpus carries an alignment
// target.
func (c *Corpus) HasJobDescription() bool {
	return c.JDEmbedding != nil
}
