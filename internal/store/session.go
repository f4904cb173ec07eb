package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/gofrs/flock"
	"github.com/google/uuid"

	cerrors "github.com/context-rag/contextrag/internal/errors"
)

const (
	// indexDirName is the bleve index directory inside the storage path.
	indexDirName = "index.bleve"

	// lockFileName guards the storage path against concurrent sessions.
	lockFileName = ".contextrag.lock"
)

// Session owns the index handle and writer for exactly one indexing run.
// It accumulates documents in an uncommitted batch and performs one
// durability commit at the end. Sessions are not reused across runs.
type Session struct {
	mu        sync.Mutex
	index     bleve.Index
	batch     *bleve.Batch
	lock      *flock.Flock
	path      string
	bufferCap uint64
	committed bool
	closed    bool
}

// Open creates the storage directory if absent, acquires exclusive
// ownership of it, and opens or creates the index with the fixed schema.
// It fails if the directory cannot be created, another session holds the
// storage path, or an existing index is unreadable or incompatible.
func Open(storagePath string) (*Session, error) {
	if strings.TrimSpace(storagePath) == "" {
		return nil, cerrors.ValidationError("storage path must not be empty", nil)
	}

	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, cerrors.New(cerrors.ErrCodeStorageCreate,
			fmt.Sprintf("failed to create storage directory %s: %v", storagePath, err), err)
	}

	// One session per storage path: a second concurrent writer would
	// corrupt the index, so refuse instead of racing.
	lock := flock.New(filepath.Join(storagePath, lockFileName))
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, cerrors.New(cerrors.ErrCodeStorageLocked,
			fmt.Sprintf("failed to lock storage path %s: %v", storagePath, err), err)
	}
	if !acquired {
		return nil, cerrors.New(cerrors.ErrCodeStorageLocked,
			fmt.Sprintf("storage path %s is in use by another session", storagePath), nil)
	}

	indexPath := filepath.Join(storagePath, indexDirName)

	if err := validateIndexIntegrity(indexPath); err != nil {
		_ = lock.Unlock()
		return nil, cerrors.New(cerrors.ErrCodeCorruptIndex,
			fmt.Sprintf("existing index at %s is unusable: %v", indexPath, err), err)
	}

	idx, err := bleve.Open(indexPath)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(indexPath, buildIndexMapping())
	}
	if err != nil {
		_ = lock.Unlock()
		code := cerrors.ErrCodeIndexOpen
		if isCorruptionError(err) {
			code = cerrors.ErrCodeCorruptIndex
		}
		return nil, cerrors.New(code,
			fmt.Sprintf("failed to open index at %s: %v", indexPath, err), err)
	}

	s := &Session{
		index:     idx,
		batch:     idx.NewBatch(),
		lock:      lock,
		path:      storagePath,
		bufferCap: DefaultWriterBufferSize,
	}

	slog.Debug("index_session_opened", slog.String("path", storagePath))
	return s, nil
}

// buildIndexMapping constructs the fixed five-field schema:
// file_path (text, stored), content (text, searchable, not stored),
// chunk_index (numeric, indexed+stored), file_hash (exact-match keyword,
// stored), modified_time (numeric, indexed+stored).
func buildIndexMapping() mapping.IndexMapping {
	doc := bleve.NewDocumentMapping()

	filePath := bleve.NewTextFieldMapping()
	filePath.Store = true
	doc.AddFieldMappingsAt(FieldFilePath, filePath)

	content := bleve.NewTextFieldMapping()
	content.Store = false
	doc.AddFieldMappingsAt(FieldContent, content)

	chunkIndex := bleve.NewNumericFieldMapping()
	chunkIndex.Store = true
	doc.AddFieldMappingsAt(FieldChunkIndex, chunkIndex)

	fileHash := bleve.NewKeywordFieldMapping()
	fileHash.Store = true
	doc.AddFieldMappingsAt(FieldFileHash, fileHash)

	modifiedTime := bleve.NewNumericFieldMapping()
	modifiedTime.Store = true
	doc.AddFieldMappingsAt(FieldModifiedTime, modifiedTime)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = doc
	return indexMapping
}

// validateIndexIntegrity checks that an existing index directory is
// structurally sound before opening. A missing directory is fine (the index
// will be created); a present but broken one is rejected, never silently
// re-created.
func validateIndexIntegrity(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	metaPath := filepath.Join(path, "index_meta.json")
	info, err := os.Stat(metaPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("index_meta.json missing")
	}
	if err != nil {
		return fmt.Errorf("cannot stat index_meta.json: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("index_meta.json is empty")
	}

	data, err := os.ReadFile(metaPath)
	if err != nil {
		return fmt.Errorf("cannot read index_meta.json: %w", err)
	}
	var meta map[string]interface{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("index_meta.json is corrupt: %w", err)
	}

	return nil
}

// isCorruptionError checks if an error indicates index corruption.
func isCorruptionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unexpected end of JSON") ||
		strings.Contains(errStr, "error parsing mapping JSON") ||
		strings.Contains(errStr, "failed to load segment") ||
		strings.Contains(errStr, "error opening bolt") ||
		err == bleve.ErrorIndexMetaCorrupt
}

// Add appends one document to the writer's uncommitted buffer. There is no
// per-document durability guarantee: documents become visible only after
// Commit. When the buffer passes its bound the batch is flushed to the
// engine early, which is a throughput optimization, not a correctness
// boundary.
func (s *Session) Add(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return cerrors.New(cerrors.ErrCodeInternal, "session is closed", nil)
	}
	if s.committed {
		return cerrors.New(cerrors.ErrCodeInternal, "session already committed", nil)
	}

	if err := s.batch.Index(uuid.NewString(), doc); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, err)
	}

	if s.batch.TotalDocsSize() >= s.bufferCap {
		slog.Debug("index_buffer_flush",
			slog.Uint64("buffered_bytes", s.batch.TotalDocsSize()))
		if err := s.index.Batch(s.batch); err != nil {
			return cerrors.Wrap(cerrors.ErrCodeInternal, err)
		}
		s.batch = s.index.NewBatch()
	}

	return nil
}

// Commit makes all documents added since Open durable and queryable.
// It must be called exactly once per run; failure here is fatal to the run
// and the caller must not report partial state as success.
func (s *Session) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return cerrors.New(cerrors.ErrCodeInternal, "session is closed", nil)
	}
	if s.committed {
		return cerrors.New(cerrors.ErrCodeInternal, "session already committed", nil)
	}

	if err := s.index.Batch(s.batch); err != nil {
		return cerrors.CommitError("index commit failed: "+err.Error(), err)
	}

	s.committed = true
	s.batch = nil

	slog.Debug("index_session_committed", slog.String("path", s.path))
	return nil
}

// DocCount returns the number of documents visible in the index.
func (s *Session) DocCount() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, cerrors.New(cerrors.ErrCodeInternal, "session is closed", nil)
	}
	return s.index.DocCount()
}

// Close releases the index handle and the storage lock. Safe to call after
// a failed run; uncommitted documents are discarded.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	if s.index != nil {
		firstErr = s.index.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Verify interface implementation
var _ Writer = (*Session)(nil)
