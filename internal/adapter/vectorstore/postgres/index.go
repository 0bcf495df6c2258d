package postgres

import (
	"context"
	"fmt"
	"time"

	"medirag/internal/domain/entity"
	"medirag/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
)

// Index persists embedded chunks in Postgres using the pgvector
// extension. Cosine distance via the <=> operator.
type Index struct {
	db *sqlx.DB
}

func NewIndex(db *sqlx.DB) repository.VectorIndex {
	return &Index{db: db}
}

func (r *Index) Store(ctx context.Context, chunks []entity.Chunk, vectors [][]float32) ([]string, error) {
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO "report_chunks" ("id", "source", "chunkIndex", "content", "chunkSize", "embedding", "createdAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	ids := make([]string, len(chunks))
	now := time.Now()
	for i, chunk := range chunks {
		ids[i] = uuid.New().String()
		_, err := tx.ExecContext(ctx, query,
			ids[i],
			chunk.Source,
			chunk.Index,
			chunk.Text,
			chunk.Length,
			pgvector.NewVector(vectors[i]),
			now,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Index) Search(ctx context.Context, vector []float32, topK int) ([]entity.ScoredChunk, error) {
	if topK <= 0 {
		topK = 5
	}

	query := `
		SELECT
			rc."source",
			rc."chunkIndex",
			rc."content",
			rc."chunkSize",
			1 - (rc."embedding" <=> $1) AS score
		FROM "report_chunks" rc
		ORDER BY rc."embedding" <=> $1, rc."createdAt", rc."chunkIndex"
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, pgvector.NewVector(vector), topK)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []entity.ScoredChunk
	for rows.Next() {
		var sc entity.ScoredChunk
		if err := rows.Scan(&sc.Source, &sc.Index, &sc.Text, &sc.Length, &sc.Score); err != nil {
			return nil, err
		}
		results = append(results, sc)
	}
	return results, rows.Err()
}

func (r *Index) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM "report_chunks"`)
	return count, err
}

func (r *Index) Name() string { return "pgvector" }
