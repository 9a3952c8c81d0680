// Package session coordinates the embedding backend, corpus builds, and
// read operations over a single resume corpus. Builds hold a writer lock
// and fully replace the corpus; reads share a reader lock and lazily
// load a persisted corpus when none is in memory.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/shubham/resume-roaster/internal/alignment"
	"github.com/shubham/resume-roaster/internal/corpus"
	"github.com/shubham/resume-roaster/internal/embedding"
	"github.com/shubham/resume-roaster/internal/query"
	"github.com/shubham/resume-roaster/internal/types"
)

// Options configure the session's builder, query engine, and analyzer.
// Zero values fall back to each component's defaults.
type Options struct {
	Params        corpus.Params
	Overfetch     int
	WeakThreshold float64
	MaxKeywords   int
	Verbose       bool
}

// Session owns the embedder and the lifecycle of the current corpus. All
// query and alignment operations go through it so they always see either
// the corpus of the last completed build or the persisted one.
type Session struct {
	id       string
	embedder embedding.Embedder
	store    *corpus.Store
	builder  *corpus.Builder
	engine   *query.Engine
	analyzer *alignment.Analyzer
	verbose  bool

	mu      sync.RWMutex
	current *corpus.Corpus
}

// New returns a Session with a fresh identifier for log correlation.
func New(embedder embedding.Embedder, store *corpus.Store, opts Options) *Session {
	return &Session{
		id:       uuid.NewString(),
		embedder: embedder,
		store:    store,
		builder:  corpus.NewBuilder(embedder, opts.Params),
		engine:   query.NewEngine(embedder, opts.Overfetch),
		analyzer: alignment.NewAnalyzer(embedder, opts.WeakThreshold, opts.MaxKeywords),
		verbose:  opts.Verbose,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Build chunks and embeds the document plus optional job description,
// persists the result, and swaps it in as the current corpus. The
// previous corpus, in memory and on disk, survives any failure.
func (s *Session) Build(ctx context.Context, doc *types.ResumeDocument, jobDescription string) (*types.BuildStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vlogf("session %s: building corpus", s.id)
	c, stats, err := s.builder.Build(ctx, doc, jobDescription)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(c); err != nil {
		return nil, fmt.Errorf("failed to persist corpus: %w", err)
	}
	s.current = c
	s.vlogf("session %s: corpus ready, %d chunks at dimension %d", s.id, stats.TotalChunks, stats.Dimension)
	return stats, nil
}

// Search returns up to k chunks ranked by similarity to the query,
// optionally restricted to one chunk type.
func (s *Session) Search(ctx context.Context, queryText string, k int, filter types.ChunkType) ([]types.ScoredChunk, error) {
	c, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.engine.Search(ctx, c, queryText, k, filter)
}

// RelevantContext renders the top k matching chunks as a prompt-ready
// context string. Job description chunks participate only when includeJD
// is true.
func (s *Session) RelevantContext(ctx context.Context, queryText string, k int, includeJD bool) (string, error) {
	c, err := s.snapshot()
	if err != nil {
		return "", err
	}
	return s.engine.RelevantContext(ctx, c, queryText, k, includeJD)
}

// CompareToJD scores resume sections against the job description. The
// report is nil when the corpus has no job description to compare to.
func (s *Session) CompareToJD(ctx context.Context) (*types.AlignmentReport, error) {
	c, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.analyzer.CompareToJD(ctx, c)
}

// Keywords extracts candidate keywords from the corpus's job
// description chunks.
func (s *Session) Keywords() ([]string, error) {
	c, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.analyzer.ExtractKeywords(c), nil
}

// Stats summarizes the current corpus.
func (s *Session) Stats() (*types.BuildStats, error) {
	c, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return c.Stats(), nil
}

// snapshot returns the current corpus, loading the persisted one when
// nothing has been built in this session yet. Missing and corrupt
// artifacts both come back as ErrNoIndex; a corrupt store is worth a
// warning since it means a stale build will silently need redoing.
func (s *Session) snapshot() (*corpus.Corpus, error) {
	s.mu.RLock()
	c := s.current
	s.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return s.current, nil
	}

	loaded, err := s.store.Load()
	if err != nil {
		var corrupt *corpus.CorruptError
		switch {
		case errors.Is(err, corpus.ErrNotFound):
			s.vlogf("session %s: no persisted corpus in %s", s.id, s.store.Dir())
			return nil, corpus.ErrNoIndex
		case errors.As(err, &corrupt):
			fmt.Printf("Warning: persisted corpus is corrupt, rebuild required: %v\n", err)
			return nil, fmt.Errorf("%w: persisted corpus is corrupt", corpus.ErrNoIndex)
		default:
			return nil, err
		}
	}

	s.current = loaded
	s.vlogf("session %s: loaded persisted corpus with %d chunks", s.id, loaded.Len())
	return loaded, nil
}

func (s *Session) vlogf(format string, args ...any) {
	if s.verbose {
		fmt.Printf("[VERBOSE] "+format+"\n", args...)
	}
}
