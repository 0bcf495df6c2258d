package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"medirag/internal/domain/entity"
	"medirag/internal/domain/repository"

	"github.com/google/uuid"
)

// Index is a brute-force in-memory vector index using cosine
// similarity. Store takes the write lock, Search the read lock, so
// concurrent searches proceed in parallel but never observe a
// partially written batch.
type Index struct {
	mu        sync.RWMutex
	dimension int
	ids       []string
	chunks    []entity.Chunk
	vectors   [][]float32
}

func NewIndex() *Index {
	return &Index{}
}

var _ repository.VectorIndex = (*Index)(nil)

func (idx *Index) Store(ctx context.Context, chunks []entity.Chunk, vectors [][]float32) ([]string, error) {
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	// The first stored batch fixes the index dimension.
	if idx.dimension == 0 {
		idx.dimension = len(vectors[0])
	}
	for _, v := range vectors {
		if len(v) != idx.dimension {
			return nil, fmt.Errorf("vector dimension mismatch: got %d, index has %d", len(v), idx.dimension)
		}
	}

	ids := make([]string, len(chunks))
	for i := range chunks {
		ids[i] = uuid.New().String()
	}
	idx.ids = append(idx.ids, ids...)
	idx.chunks = append(idx.chunks, chunks...)
	idx.vectors = append(idx.vectors, vectors...)
	return ids, nil
}

func (idx *Index) Search(ctx context.Context, vector []float32, topK int) ([]entity.ScoredChunk, error) {
	if topK <= 0 {
		topK = 5
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.vectors) == 0 {
		return nil, nil
	}
	if len(vector) != idx.dimension {
		return nil, fmt.Errorf("query vector dimension mismatch: got %d, index has %d", len(vector), idx.dimension)
	}

	results := make([]entity.ScoredChunk, len(idx.vectors))
	for i := range idx.vectors {
		results[i] = entity.ScoredChunk{
			Chunk: idx.chunks[i],
			Score: cosine(idx.vectors[i], vector),
		}
	}
	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

func (idx *Index) Count(ctx context.Context) (int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks), nil
}

func (idx *Index) Name() string { return "memory" }

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
