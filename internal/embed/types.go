// Package embed generates placeholder embeddings for indexed chunks.
//
// The vectors are deterministic pseudo-random unit vectors derived from a
// hash of the input text. They are NOT semantically meaningful: this is a
// stand-in for a real embedding model, kept at the pipeline boundary so the
// chunk JSON contract can be exercised end to end.
package embed

import "context"

// Dimensions is the embedding vector size, matching the
// sentence-transformers all-MiniLM-L6-v2 shape the contract was built for.
const Dimensions = 384

// EngineName identifies this implementation in responses.
const EngineName = "go"

// DefaultModelName is reported when the caller supplies no model.
const DefaultModelName = "static-embedder"

// Embedder generates embeddings for text.
type Embedder interface {
	// Embed generates an embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding dimension.
	Dimensions() int

	// ModelName returns the model identifier.
	ModelName() string

	// Close releases resources.
	Close() error
}
