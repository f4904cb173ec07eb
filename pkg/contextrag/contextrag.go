// Package contextrag is the public library API for index creation and
// directory indexing. Adapters (the CLI, a network service, a native
// binding) stay thin: they translate their transport into these two calls
// and pass the string results through.
package contextrag

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/context-rag/contextrag/internal/config"
	cerrors "github.com/context-rag/contextrag/internal/errors"
	"github.com/context-rag/contextrag/internal/index"
	"github.com/context-rag/contextrag/internal/store"
)

// createSuccessMessage is the fixed reply for a successful CreateIndex.
const createSuccessMessage = "Index created successfully"

// CreateIndex opens or creates an index at storagePath with the fixed
// five-field schema and returns a success message. It fails when the
// storage directory cannot be created, another session holds the path, or
// an existing index is unreadable or incompatible.
func CreateIndex(storagePath string) (string, error) {
	session, err := store.Open(storagePath)
	if err != nil {
		return "", err
	}
	if err := session.Close(); err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInternal, err)
	}
	return createSuccessMessage, nil
}

// IndexDirectory parses configJSON, indexes the current working directory
// into the index at storagePath, and returns the run result serialized as
// JSON: {"indexed_files", "total_chunks", "processing_time_ms"}.
//
// The config's storage_path field is redundant with the storagePath
// argument; both must be supplied and must agree, otherwise the call is
// rejected before any work happens.
func IndexDirectory(storagePath, configJSON string) (string, error) {
	return IndexDirectoryContext(context.Background(), storagePath, configJSON)
}

// IndexDirectoryContext is IndexDirectory with caller-controlled
// cancellation. A cancelled run aborts without committing; nothing added
// so far becomes durable.
func IndexDirectoryContext(ctx context.Context, storagePath, configJSON string) (string, error) {
	cfg, err := config.ParseJSON(configJSON)
	if err != nil {
		return "", err
	}
	if cfg.StoragePath != storagePath {
		return "", cerrors.ValidationError(
			fmt.Sprintf("storage path mismatch: argument %q vs config %q", storagePath, cfg.StoragePath), nil)
	}

	fc, err := config.LoadProject(".")
	if err != nil {
		return "", err
	}
	cfg.ApplyProject(fc)
	cfg.ApplyEnvOverrides()

	session, err := store.Open(storagePath)
	if err != nil {
		return "", err
	}
	defer func() { _ = session.Close() }()

	result, err := index.NewRunner(session).Run(ctx, cfg)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInternal, err)
	}
	return string(payload), nil
}
