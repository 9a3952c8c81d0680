package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/shubham/resume-roaster/internal/index"
	"github.com/shubham/resume-roaster/internal/types"
	"github.com/shubham/resume-roaster/schemas"
)

// Artifact file names inside the store directory.
const (
	IndexArtifact    = "resume_index.bin"
	MetadataArtifact = "resume_metadata.json"
	JDArtifact       = "jd_embedding.bin"
)

// Store persists a Corpus as three co-located files in one directory:
// the index binary, the ordered chunk metadata JSON, and, when the build
// had a job description, its whole-text embedding.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created on
// first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's artifact directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes all artifacts to temp names in the store directory and
// renames them into place only after every write succeeded, so a failed
// save leaves any previously persisted corpus intact. A corpus without a
// job description also removes a stale jd_embedding.bin left by an
// earlier build.
func (s *Store) Save(c *Corpus) error {
	if c == nil || c.Index == nil {
		return fmt.Errorf("nothing to save: corpus has no index")
	}
	if c.Index.Len() != len(c.Meta) {
		return fmt.Errorf("refusing to save: index holds %d vectors but metadata describes %d chunks", c.Index.Len(), len(c.Meta))
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	suffix := uuid.NewString()
	tempName := func(artifact string) string {
		return filepath.Join(s.dir, fmt.Sprintf("%s.%s.tmp", artifact, suffix))
	}

	var temps []string
	committed := false
	defer func() {
		if committed {
			return
		}
		for _, t := range temps {
			os.Remove(t)
		}
	}()

	tmpIndex := tempName(IndexArtifact)
	temps = append(temps, tmpIndex)
	if err := c.Index.WriteFile(tmpIndex); err != nil {
		return fmt.Errorf("failed to write index artifact: %w", err)
	}

	meta := c.Meta
	if meta == nil {
		meta = []types.Chunk{}
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode chunk metadata: %w", err)
	}
	tmpMeta := tempName(MetadataArtifact)
	temps = append(temps, tmpMeta)
	if err := os.WriteFile(tmpMeta, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata artifact: %w", err)
	}

	var tmpJD string
	if c.JDEmbedding != nil {
		tmpJD = tempName(JDArtifact)
		temps = append(temps, tmpJD)
		if err := index.WriteVector(tmpJD, c.JDEmbedding); err != nil {
			return fmt.Errorf("failed to write job description embedding: %w", err)
		}
	}

	if err := os.Rename(tmpIndex, filepath.Join(s.dir, IndexArtifact)); err != nil {
		return fmt.Errorf("failed to commit index artifact: %w", err)
	}
	if err := os.Rename(tmpMeta, filepath.Join(s.dir, MetadataArtifact)); err != nil {
		return fmt.Errorf("failed to commit metadata artifact: %w", err)
	}
	if tmpJD != "" {
		if err := os.Rename(tmpJD, filepath.Join(s.dir, JDArtifact)); err != nil {
			return fmt.Errorf("failed to commit job description embedding: %w", err)
		}
	}
	committed = true

	if c.JDEmbedding == nil {
		if err := os.Remove(filepath.Join(s.dir, JDArtifact)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale job description embedding: %w", err)
		}
	}

	return nil
}

// Load reads a persisted corpus back. Missing artifacts come back as
// ErrNotFound, present-but-unreadable ones as *CorruptError, and anything
// else is a raw I/O error. The metadata artifact is validated against its
// JSON Schema before decoding.
func (s *Store) Load() (*Corpus, error) {
	idx, err := index.ReadFile(filepath.Join(s.dir, IndexArtifact))
	if err != nil {
		return nil, classifyArtifactError(IndexArtifact, err)
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, MetadataArtifact))
	if err != nil {
		return nil, classifyArtifactError(MetadataArtifact, err)
	}
	if err := schemas.ValidateChunkMetadata(raw); err != nil {
		return nil, &CorruptError{Artifact: MetadataArtifact, Message: "schema validation failed", Cause: err}
	}
	var meta []types.Chunk
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, &CorruptError{Artifact: MetadataArtifact, Message: "failed to decode chunk metadata", Cause: err}
	}

	if idx.Len() != len(meta) {
		return nil, &CorruptError{
			Artifact: MetadataArtifact,
			Message:  fmt.Sprintf("index holds %d vectors but metadata describes %d chunks", idx.Len(), len(meta)),
		}
	}

	c := &Corpus{Index: idx, Meta: meta}

	jdEmbedding, err := index.ReadVector(filepath.Join(s.dir, JDArtifact))
	switch {
	case err == nil:
		if idx.Len() > 0 && len(jdEmbedding) != idx.Dimension() {
			return nil, &CorruptError{
				Artifact: JDArtifact,
				Message:  fmt.Sprintf("embedding has dimension %d but index uses %d", len(jdEmbedding), idx.Dimension()),
			}
		}
		c.JDEmbedding = jdEmbedding
	case os.IsNotExist(err):
		// No alignment target persisted; that is a complete corpus.
	case errors.Is(err, index.ErrInvalidFormat):
		return nil, &CorruptError{Artifact: JDArtifact, Message: "failed to decode embedding", Cause: err}
	default:
		return nil, fmt.Errorf("failed to read %s: %w", JDArtifact, err)
	}

	return c, nil
}

// classifyArtifactError maps a read failure to the store's error kinds.
func classifyArtifactError(artifact string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", ErrNotFound, artifact)
	case errors.Is(err, index.ErrInvalidFormat):
		return &CorruptError{Artifact: artifact, Message: "failed to decode", Cause: err}
	default:
		return fmt.Errorf("failed to read %s: %w", artifact, err)
	}
}
