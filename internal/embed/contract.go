package embed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ChunkInput is one chunk as produced by the indexing pipeline, received
// over the batch channel.
type ChunkInput struct {
	Content    string `json:"content"`
	FilePath   string `json:"file_path"`
	ChunkIndex uint64 `json:"chunk_index"`
}

// EmbeddedChunk is a chunk with its embedding attached.
type EmbeddedChunk struct {
	Content    string    `json:"content"`
	Embedding  []float32 `json:"embedding"`
	FilePath   string    `json:"file_path"`
	ChunkIndex uint64    `json:"chunk_index"`
}

// BatchRequest is the stdin payload for batch embedding.
type BatchRequest struct {
	Chunks []ChunkInput `json:"chunks"`
}

// BatchResponse is the stdout payload for batch embedding.
type BatchResponse struct {
	Chunks      []EmbeddedChunk `json:"chunks"`
	Model       string          `json:"model"`
	Engine      string          `json:"engine"`
	TotalChunks int             `json:"total_chunks"`
}

// TextResponse is the stdout payload for single-text embedding.
type TextResponse struct {
	Embedding []float32 `json:"embedding"`
	Model     string    `json:"model"`
	Engine    string    `json:"engine"`
}

// TextsRequest is the stdin payload for the legacy embed mode.
type TextsRequest struct {
	Texts []string `json:"texts"`
}

// TextsResponse is the stdout payload for the legacy embed mode.
type TextsResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Model      string      `json:"model"`
	Engine     string      `json:"engine"`
}

// EmbedChunks reads a BatchRequest from r and returns the response with an
// embedding attached to every chunk. The request must carry a chunks array.
func EmbedChunks(ctx context.Context, e Embedder, r io.Reader) (*BatchResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var req BatchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid input JSON: %w", err)
	}
	if req.Chunks == nil {
		return nil, fmt.Errorf("missing 'chunks' array in input")
	}

	embedded := make([]EmbeddedChunk, 0, len(req.Chunks))
	for _, c := range req.Chunks {
		vec, err := e.Embed(ctx, c.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk %s[%d]: %w", c.FilePath, c.ChunkIndex, err)
		}
		embedded = append(embedded, EmbeddedChunk{
			Content:    c.Content,
			Embedding:  vec,
			FilePath:   c.FilePath,
			ChunkIndex: c.ChunkIndex,
		})
	}

	return &BatchResponse{
		Chunks:      embedded,
		Model:       e.ModelName(),
		Engine:      EngineName,
		TotalChunks: len(embedded),
	}, nil
}

// EmbedText embeds a single text and wraps it in the response envelope.
func EmbedText(ctx context.Context, e Embedder, text string) (*TextResponse, error) {
	vec, err := e.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	return &TextResponse{
		Embedding: vec,
		Model:     e.ModelName(),
		Engine:    EngineName,
	}, nil
}

// EmbedTexts reads a TextsRequest from r and embeds each text.
// This is the legacy batch mode kept for older callers.
func EmbedTexts(ctx context.Context, e Embedder, r io.Reader) (*TextsResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var req TextsRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid input JSON: %w", err)
	}
	if req.Texts == nil {
		return nil, fmt.Errorf("missing 'texts' array in input")
	}

	vecs, err := e.EmbedBatch(ctx, req.Texts)
	if err != nil {
		return nil, err
	}

	return &TextsResponse{
		Embeddings: vecs,
		Model:      e.ModelName(),
		Engine:     EngineName,
	}, nil
}
