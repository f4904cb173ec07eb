// Package store owns the persistent full-text index behind an indexing run.
// It defines the fixed document schema, builds typed documents from chunks,
// and manages the single writer session whose commit makes a run durable.
package store

// Schema field names. The schema is fixed and versionless: five named,
// typed fields constructed identically for every session. An existing
// storage location is assumed to carry this same schema.
const (
	FieldFilePath     = "file_path"
	FieldContent      = "content"
	FieldChunkIndex   = "chunk_index"
	FieldFileHash     = "file_hash"
	FieldModifiedTime = "modified_time"
)

// DefaultWriterBufferSize bounds the in-memory uncommitted batch, tuned for
// bulk-insert throughput. When the buffer fills, the session flushes to the
// engine as an optimization; durability still comes only from Commit.
const DefaultWriterBufferSize = 50 * 1024 * 1024

// Document is one indexed chunk with its provenance. file_hash and
// modified_time are file-level: identical across all chunks of one file.
type Document struct {
	FilePath     string  `json:"file_path"`
	Content      string  `json:"content"`
	ChunkIndex   uint64  `json:"chunk_index"`
	FileHash     string  `json:"file_hash"`
	ModifiedTime int64   `json:"modified_time"`
}

// NewDocuments builds one document per chunk for a file. Chunk indices are
// contiguous from 0 in chunk order.
func NewDocuments(filePath string, chunks []string, fileHash string, modifiedTime int64) []*Document {
	docs := make([]*Document, 0, len(chunks))
	for i, content := range chunks {
		docs = append(docs, &Document{
			FilePath:     filePath,
			Content:      content,
			ChunkIndex:   uint64(i),
			FileHash:     fileHash,
			ModifiedTime: modifiedTime,
		})
	}
	return docs
}

// Writer is the capability surface the orchestrator requires from an index
// session. Keeping it narrow makes the concrete engine swappable without
// touching filter, chunk, or hash logic.
type Writer interface {
	// Add appends one document to the uncommitted buffer.
	Add(doc *Document) error

	// Commit makes all added documents durable and queryable.
	// Must be called exactly once at the end of a full traversal.
	Commit() error

	// Close releases the index handle and the storage lock.
	Close() error
}
