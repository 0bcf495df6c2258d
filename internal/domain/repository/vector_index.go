package repository

import (
	"context"

	"medirag/internal/domain/entity"
)

// VectorIndex stores embedded chunks and answers nearest-neighbor
// queries by cosine similarity. Entries are append-only: re-ingesting
// the same report adds new entries rather than replacing old ones.
type VectorIndex interface {
	// Store persists chunks with their embeddings and returns the
	// assigned entry IDs. The two slices must have equal length.
	Store(ctx context.Context, chunks []entity.Chunk, vectors [][]float32) ([]string, error)

	// Search returns up to topK entries ordered by decreasing cosine
	// similarity (closest first), ties broken by insertion order.
	// An empty index yields an empty result, not an error.
	Search(ctx context.Context, vector []float32, topK int) ([]entity.ScoredChunk, error)

	// Count reports the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Name identifies the backend for status reporting.
	Name() string
}
