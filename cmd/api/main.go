package main

import (
	"fmt"
	"log"

	_ "medirag/docs"
	"medirag/internal/adapter/openrouter"
	"medirag/internal/adapter/vectorstore/memory"
	vectorpg "medirag/internal/adapter/vectorstore/postgres"
	"medirag/internal/delivery/http/handler"
	"medirag/internal/domain/repository"
	"medirag/internal/usecase/report"
	"medirag/pkg/config"
	"medirag/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	// log
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// @title           MediRAG API
// @version         1.0
// @description     Retrieval-augmented question answering over uploaded medical reports
// @host            localhost:5000
// @BasePath        /
func main() {
	cfg := config.Load()

	if cfg.OpenRouterKey == "" {
		log.Println("warning: OPENROUTER_API_KEY is not set; upload and query requests will fail")
	}

	// initialize vector index
	var index repository.VectorIndex
	switch cfg.VectorDB {
	case "pgvector":
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("connected to database")
		index = vectorpg.NewIndex(db)
	default:
		index = memory.NewIndex()
	}

	// initialize openrouter clients
	embeddingClient := openrouter.NewEmbeddingClient(cfg.OpenRouterKey, cfg.OpenRouterBaseURL, cfg.EmbeddingModel)
	chatClient := openrouter.NewChatClient(cfg.OpenRouterKey, cfg.OpenRouterBaseURL, cfg.ChatModel)

	// initialize usecase
	chunker, err := report.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		log.Fatalf("invalid chunking config: %v", err)
	}
	usecase := report.NewUsecase(
		index,
		embeddingClient,
		chatClient,
		report.NewPDFExtractor(),
		chunker,
		cfg.TopKResults,
		cfg.EmbedTimeout,
		cfg.LLMTimeout,
	)

	// initialize handler
	reportHandler := handler.NewReportHandler(usecase)

	// initialize fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadMB * 1024 * 1024,
	})

	// middleware for log request and response in terminal
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger route
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Routes
	app.Post("/upload", reportHandler.Upload)
	app.Post("/query", reportHandler.Query)
	app.Get("/status", reportHandler.Status)

	// Start server
	log.Printf("🚀 Server starting on port %d", cfg.Port)
	log.Printf("📚 Swagger UI: http://localhost:%d/swagger/index.html", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
