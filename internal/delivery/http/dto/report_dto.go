package dto

type UploadReportResponse struct {
	Message       string `json:"message"`
	ChunksCreated int    `json:"chunks_created"`
	Filename      string `json:"filename"`
}

type QueryRequest struct {
	Query       string `json:"query"`
	Perspective string `json:"perspective,omitempty"`
}

type QueryResponse struct {
	Response    string `json:"response"`
	Query       string `json:"query"`
	Perspective string `json:"perspective"`
	ChunksUsed  int    `json:"chunks_used"`
}

type StatusResponse struct {
	Status          string `json:"status"`
	DocumentsStored int    `json:"documents_stored"`
	EmbeddingModel  string `json:"embedding_model"`
	VectorDB        string `json:"vector_db"`
	LLMModel        string `json:"llm_model"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
