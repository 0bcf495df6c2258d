package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"medirag/internal/adapter/vectorstore/memory"
	"medirag/internal/usecase/report"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct{}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = []float32{float32(len(text)%7) + 1, float32(len(text) % 5), 1}
	}
	return vectors, nil
}

func (s *stubEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return []float32{float32(len(text)%7) + 1, float32(len(text) % 5), 1}, nil
}

func (s *stubEmbedder) Model() string { return "stub-embed" }

type stubChat struct{ answer string }

func (s *stubChat) GenerateAnswer(ctx context.Context, system, prompt string) (string, error) {
	return s.answer, nil
}

func (s *stubChat) Model() string { return "stub-llm" }

type stubExtractor struct{ text string }

func (s *stubExtractor) ExtractText(data []byte) (string, error) { return s.text, nil }

func reportText() string {
	sentence := "Blood test results show hemoglobin at 13.5 g/dL which is in the normal range. "
	return strings.Repeat(sentence, 20)[:1500]
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	chunker, err := report.NewChunker(1000, 200)
	require.NoError(t, err)
	uc := report.NewUsecase(
		memory.NewIndex(),
		&stubEmbedder{},
		&stubChat{answer: "Your hemoglobin is normal."},
		&stubExtractor{text: reportText()},
		chunker,
		5,
		time.Minute,
		time.Minute,
	)
	h := NewReportHandler(uc)

	app := fiber.New()
	app.Post("/upload", h.Upload)
	app.Post("/query", h.Query)
	app.Get("/status", h.Status)
	return app
}

func uploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 stub"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httpRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func httpRequest(method, target string, body io.Reader) *http.Request {
	req, _ := http.NewRequest(method, target, body)
	return req
}

func jsonRequest(t *testing.T, target string, payload any) *http.Request {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httpRequest(http.MethodPost, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestUploadMissingFile(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httpRequest(http.MethodPost, "/upload", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsNonPDF(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(uploadRequest(t, "notes.docx"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQueryEmptyBody(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "/query", map[string]string{"query": "  "}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQueryBeforeUpload(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "/query", map[string]string{
		"query": "What does low hemoglobin mean?",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQueryOffDomainReturnsRefusal(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "/query", map[string]string{
		"query": "Recommend a good pizza place",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Response   string `json:"response"`
		ChunksUsed int    `json:"chunks_used"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Response, "I apologize")
	assert.Zero(t, body.ChunksUsed)
}

func TestUploadThenQuery(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(uploadRequest(t, "report.pdf"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var uploaded struct {
		Message       string `json:"message"`
		ChunksCreated int    `json:"chunks_created"`
		Filename      string `json:"filename"`
	}
	decodeBody(t, resp, &uploaded)
	assert.Equal(t, "PDF processed successfully", uploaded.Message)
	assert.Equal(t, 2, uploaded.ChunksCreated)
	assert.Equal(t, "report.pdf", uploaded.Filename)

	resp, err = app.Test(jsonRequest(t, "/query", map[string]string{
		"query":       "What does low hemoglobin mean?",
		"perspective": "patient",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var answered struct {
		Response    string `json:"response"`
		Query       string `json:"query"`
		Perspective string `json:"perspective"`
		ChunksUsed  int    `json:"chunks_used"`
	}
	decodeBody(t, resp, &answered)
	assert.Equal(t, "Your hemoglobin is normal.", answered.Response)
	assert.Equal(t, "What does low hemoglobin mean?", answered.Query)
	assert.Equal(t, "patient", answered.Perspective)
	assert.GreaterOrEqual(t, answered.ChunksUsed, 1)
}

func TestStatus(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httpRequest(http.MethodGet, "/status", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status struct {
		Status          string `json:"status"`
		DocumentsStored int    `json:"documents_stored"`
		EmbeddingModel  string `json:"embedding_model"`
		VectorDB        string `json:"vector_db"`
		LLMModel        string `json:"llm_model"`
	}
	decodeBody(t, resp, &status)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, 0, status.DocumentsStored)
	assert.Equal(t, "stub-embed", status.EmbeddingModel)
	assert.Equal(t, "memory", status.VectorDB)
	assert.Equal(t, "stub-llm", status.LLMModel)
}
