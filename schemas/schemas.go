// Package schemas embeds the JSON Schema documents that describe the
// on-disk artifacts of a corpus build and exposes validation helpers for
// them. Embedding keeps the schemas available wherever the binary runs,
// without resolving repository-relative paths at runtime.
package schemas

import (
	_ "embed"

	"github.com/shubham/resume-roaster/internal/schemas"
)

// ChunkMetadataSchema is the JSON Schema for the persisted chunk metadata
// artifact (resume_metadata.json).
//
//go:embed chunk_metadata.schema.json
var ChunkMetadataSchema string

// ValidateChunkMetadata validates raw metadata JSON against the chunk
// metadata schema. Field-level failures come back as a ValidationError
// and unparseable documents as a SchemaLoadError, both from the
// internal schemas package.
func ValidateChunkMetadata(data []byte) error {
	return schemas.ValidateJSONString(ChunkMetadataSchema, string(data))
}
