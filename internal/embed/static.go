package embed

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"sync"
)

// StaticEmbedder generates embeddings using a hash-based approach.
// Works without external dependencies (no network, no model download).
// Vectors are deterministic per input text and L2-normalized to unit
// length, like real embeddings; they carry no semantic signal.
type StaticEmbedder struct {
	mu     sync.RWMutex
	model  string
	closed bool
}

// NewStaticEmbedder creates a new static embedder. An empty model name
// falls back to DefaultModelName.
func NewStaticEmbedder(model string) *StaticEmbedder {
	if model == "" {
		model = DefaultModelName
	}
	return &StaticEmbedder{model: model}
}

// Embed generates the embedding for a single text.
// Empty or whitespace-only input yields the zero vector.
func (e *StaticEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return nil, fmt.Errorf("embedder is closed")
	}
	e.mu.RUnlock()

	if strings.TrimSpace(text) == "" {
		return make([]float32, Dimensions), nil
	}

	return generateVector(text), nil
}

// generateVector derives the vector from an FNV-64 hash of the text: the
// base hash seeds one hash per dimension, each mapped into [-1, 1], then
// the whole vector is normalized to unit length.
func generateVector(text string) []float32 {
	base := hashString(text)
	vector := make([]float32, Dimensions)

	for i := range vector {
		h := hashUint64(base + uint64(i))
		normalized := float64(h)/float64(math.MaxUint64)*2.0 - 1.0
		vector[i] = float32(normalized)
	}

	return normalizeVector(vector)
}

// hashString returns the FNV-64a hash of s.
func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// hashUint64 returns the FNV-64a hash of v's big-endian bytes.
func hashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// normalizeVector scales v to unit length. The zero vector is returned
// unchanged.
func normalizeVector(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	magnitude := math.Sqrt(sum)
	if magnitude == 0 {
		return v
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / magnitude)
	}
	return v
}

// EmbedBatch generates embeddings for multiple texts.
func (e *StaticEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return nil, fmt.Errorf("embedder is closed")
	}
	e.mu.RUnlock()

	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	results := make([][]float32, len(texts))
	for i, text := range texts {
		emb, err := e.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed text %d: %w", i, err)
		}
		results[i] = emb
	}

	return results, nil
}

// Dimensions returns the embedding dimension.
func (e *StaticEmbedder) Dimensions() int {
	return Dimensions
}

// ModelName returns the model identifier.
func (e *StaticEmbedder) ModelName() string {
	return e.model
}

// Close releases resources.
func (e *StaticEmbedder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

// Verify interface implementation
var _ Embedder = (*StaticEmbedder)(nil)
