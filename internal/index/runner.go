// Package index drives the indexing pipeline: directory traversal, pattern
// filtering, content hashing, chunking, document assembly, and the single
// end-of-run commit.
package index

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/context-rag/contextrag/internal/chunk"
	"github.com/context-rag/contextrag/internal/config"
	"github.com/context-rag/contextrag/internal/filter"
	"github.com/context-rag/contextrag/internal/fingerprint"
	"github.com/context-rag/contextrag/internal/store"
)

// TraversalRoot is where recursive file discovery begins. It is always the
// process working directory, never a configured path: callers that want to
// index elsewhere must chdir first.
const TraversalRoot = "."

// Result is the aggregate outcome of one indexing run.
type Result struct {
	IndexedFiles     uint64 `json:"indexed_files"`
	TotalChunks      uint64 `json:"total_chunks"`
	ProcessingTimeMS uint64 `json:"processing_time_ms"`
}

// Runner orchestrates one indexing run over an injected index writer.
type Runner struct {
	writer store.Writer
}

// NewRunner creates a Runner writing to the given session.
func NewRunner(writer store.Writer) *Runner {
	return &Runner{writer: writer}
}

// Run enumerates every entry under the traversal root, indexes each file
// that passes the pattern filter and reads as text, then commits the
// session once and reports aggregate counts.
//
// Per-file failures (unreadable, non-text, metadata unavailable) are
// absorbed: the file is skipped, not counted, and traversal continues. The
// result is therefore best-effort; skips are visible only in debug logs.
// A commit failure is fatal — partial state is never reported as success.
func (r *Runner) Run(ctx context.Context, cfg *config.IndexConfig) (*Result, error) {
	start := time.Now()

	var indexedFiles, totalChunks, skippedFiles uint64

	walkErr := filepath.WalkDir(TraversalRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return nil // entries we cannot stat are skipped silently
		}
		if d.IsDir() {
			return nil
		}

		if !filter.ShouldInclude(path, cfg.Include, cfg.Exclude) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			skippedFiles++
			slog.Debug("file_skipped", slog.String("path", path), slog.String("reason", "unreadable"))
			return nil
		}
		if !utf8.Valid(data) {
			skippedFiles++
			slog.Debug("file_skipped", slog.String("path", path), slog.String("reason", "not_text"))
			return nil
		}

		info, err := d.Info()
		if err != nil {
			skippedFiles++
			slog.Debug("file_skipped", slog.String("path", path), slog.String("reason", "no_metadata"))
			return nil
		}

		content := string(data)
		fileHash := fingerprint.Hash(content)
		chunks := chunk.Split(content)

		docs := store.NewDocuments(path, chunks, fileHash, info.ModTime().Unix())
		for _, doc := range docs {
			if addErr := r.writer.Add(doc); addErr != nil {
				return addErr
			}
		}

		indexedFiles++
		totalChunks += uint64(len(docs))
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if err := r.writer.Commit(); err != nil {
		return nil, err
	}

	if skippedFiles > 0 {
		slog.Debug("traversal_skips", slog.Uint64("skipped_files", skippedFiles))
	}
	slog.Info("indexing_complete",
		slog.Uint64("indexed_files", indexedFiles),
		slog.Uint64("total_chunks", totalChunks))

	return &Result{
		IndexedFiles:     indexedFiles,
		TotalChunks:      totalChunks,
		ProcessingTimeMS: uint64(time.Since(start).Milliseconds()),
	}, nil
}
