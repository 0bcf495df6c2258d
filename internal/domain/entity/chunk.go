package entity

// Chunk is the unit of embedding and retrieval: a bounded, possibly
// overlapping substring of an uploaded report.
type Chunk struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Index  int    `json:"chunkIndex"`
	Length int    `json:"chunkSize"`
}

// ScoredChunk is a retrieval hit with its cosine similarity score.
type ScoredChunk struct {
	Chunk
	Score float64 `json:"score"`
}
