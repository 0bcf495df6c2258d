package report

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"medirag/internal/domain/entity"
	"medirag/internal/domain/repository"
)

type EmbeddingService interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	Model() string
}

type ChatService interface {
	GenerateAnswer(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// Answer is the outcome of one query: the generated (or refusal) text,
// the perspective actually used and the number of chunks consumed.
type Answer struct {
	Response    string
	Perspective entity.Perspective
	ChunksUsed  int
}

// Status describes the pipeline for health reporting.
type Status struct {
	DocumentsStored int
	EmbeddingModel  string
	VectorDB        string
	LLMModel        string
}

type Usecase struct {
	index        repository.VectorIndex
	embedder     EmbeddingService
	chat         ChatService
	extractor    TextExtractor
	chunker      *Chunker
	gate         *Gate
	topK         int
	embedTimeout time.Duration
	llmTimeout   time.Duration
}

func NewUsecase(
	index repository.VectorIndex,
	embedder EmbeddingService,
	chat ChatService,
	extractor TextExtractor,
	chunker *Chunker,
	topK int,
	embedTimeout, llmTimeout time.Duration,
) *Usecase {
	return &Usecase{
		index:        index,
		embedder:     embedder,
		chat:         chat,
		extractor:    extractor,
		chunker:      chunker,
		gate:         NewGate(),
		topK:         topK,
		embedTimeout: embedTimeout,
		llmTimeout:   llmTimeout,
	}
}

// UploadReport runs the ingestion pipeline: extract, chunk, embed,
// store. Nothing is stored when any step fails. Returns the number of
// chunks created.
func (uc *Usecase) UploadReport(ctx context.Context, filename string, fileData []byte) (int, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return 0, ErrInvalidFileType
	}

	text, err := uc.extractor.ExtractText(fileData)
	if err != nil {
		return 0, fmt.Errorf("failed to extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return 0, ErrNoText
	}
	log.Printf("Extracted %d characters from %s", len(text), filename)

	textChunks := uc.chunker.Split(text)
	if len(textChunks) == 0 {
		return 0, ErrNoText
	}
	log.Printf("Generated %d chunks from %s", len(textChunks), filename)

	embedCtx, cancel := uc.withTimeout(ctx, uc.embedTimeout)
	defer cancel()
	vectors, err := uc.embedder.EmbedBatch(embedCtx, textChunks)
	if err != nil {
		return 0, fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(textChunks) {
		return 0, fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(textChunks), len(vectors))
	}

	chunks := make([]entity.Chunk, len(textChunks))
	for i, content := range textChunks {
		chunks[i] = entity.Chunk{
			Text:   content,
			Source: filename,
			Index:  i,
			Length: len(content),
		}
	}

	if _, err := uc.index.Store(ctx, chunks, vectors); err != nil {
		return 0, fmt.Errorf("failed to store chunks: %w", err)
	}
	log.Printf("Stored %d chunks from %s in %s index", len(chunks), filename, uc.index.Name())

	return len(chunks), nil
}

// Query answers one question. Off-domain queries are refused without
// touching the embedder, the index or the model; an empty retrieval
// result yields ErrNoRelevantContext.
func (uc *Usecase) Query(ctx context.Context, query string, perspective string) (*Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	p := entity.ParsePerspective(perspective)
	profile := profileFor(p)

	if !uc.gate.IsMedicalQuery(query) {
		log.Printf("Rejected off-domain query: %q", query)
		return &Answer{Response: profile.refusal, Perspective: p}, nil
	}

	embedCtx, cancel := uc.withTimeout(ctx, uc.embedTimeout)
	defer cancel()
	queryVector, err := uc.embedder.EmbedQuery(embedCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	results, err := uc.index.Search(ctx, queryVector, uc.topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar chunks: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoRelevantContext
	}

	texts := make([]string, len(results))
	for i, result := range results {
		texts[i] = result.Text
	}
	contextBlock := strings.Join(texts, "\n\n")

	llmCtx, cancel := uc.withTimeout(ctx, uc.llmTimeout)
	defer cancel()
	answer, err := uc.chat.GenerateAnswer(llmCtx, profile.system, profile.render(contextBlock, query))
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	return &Answer{
		Response:    strings.TrimSpace(answer),
		Perspective: p,
		ChunksUsed:  len(results),
	}, nil
}

// Status reports index size and the configured model identifiers.
func (uc *Usecase) Status(ctx context.Context) (*Status, error) {
	count, err := uc.index.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stored chunks: %w", err)
	}
	return &Status{
		DocumentsStored: count,
		EmbeddingModel:  uc.embedder.Model(),
		VectorDB:        uc.index.Name(),
		LLMModel:        uc.chat.Model(),
	}, nil
}

func (uc *Usecase) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
