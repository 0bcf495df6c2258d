package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        int
	MaxUploadMB int

	// openrouter
	OpenRouterKey     string
	OpenRouterBaseURL string
	EmbeddingModel    string
	ChatModel         string

	// rag config
	ChunkSize    int
	ChunkOverlap int
	TopKResults  int

	// vector backend: "memory" or "pgvector"
	VectorDB    string
	DatabaseURL string

	// upstream call timeouts
	EmbedTimeout time.Duration
	LLMTimeout   time.Duration
}

func Load() *Config {
	godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil {
		port = 5000
	}

	return &Config{
		Port:        port,
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 16),

		// OpenRouter
		OpenRouterKey:     getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		ChatModel:         getEnv("CHAT_MODEL", "mistralai/mistral-7b-instruct"),

		// RAG Config
		ChunkSize:    getEnvInt("CHUNK_SIZE", 1000),
		ChunkOverlap: getEnvInt("CHUNK_OVERLAP", 200),
		TopKResults:  getEnvInt("TOP_K_RESULTS", 5),

		// Vector backend
		VectorDB:    getEnv("VECTOR_DB", "memory"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		// Timeouts
		EmbedTimeout: getEnvDuration("EMBED_TIMEOUT", 30*time.Second),
		LLMTimeout:   getEnvDuration("LLM_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
