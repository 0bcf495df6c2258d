package handler

import (
	"errors"
	"io"
	"log"
	"strings"

	"medirag/internal/delivery/http/dto"
	"medirag/internal/usecase/report"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	usecase *report.Usecase
}

func NewReportHandler(usecase *report.Usecase) *ReportHandler {
	return &ReportHandler{usecase: usecase}
}

// Upload godoc
// @Summary      Upload a medical report
// @Description  Upload a PDF report for chunking, embedding and indexing
// @Tags         Reports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file to upload"
// @Success      200  {object}  dto.UploadReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *ReportHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open file"})
	}
	defer src.Close()

	buf, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read file"})
	}

	created, err := h.usecase.UploadReport(c.Context(), file.Filename, buf)
	if err != nil {
		log.Printf("Error processing upload %s: %v", file.Filename, err)
		switch {
		case errors.Is(err, report.ErrInvalidFileType), errors.Is(err, report.ErrNoText):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error processing file: " + err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(dto.UploadReportResponse{
		Message:       "PDF processed successfully",
		ChunksCreated: created,
		Filename:      file.Filename,
	})
}

// Query godoc
// @Summary      Query the uploaded reports
// @Description  Answer a question from the indexed report chunks, phrased for the requested perspective
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        request  body  dto.QueryRequest  true  "Query and optional perspective (patient or clinical)"
// @Success      200  {object}  dto.QueryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /query [post]
func (h *ReportHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	query := strings.TrimSpace(req.Query)

	answer, err := h.usecase.Query(c.Context(), query, req.Perspective)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrEmptyQuery):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, report.ErrNoRelevantContext):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("Error processing query: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error processing query: " + err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(dto.QueryResponse{
		Response:    answer.Response,
		Query:       query,
		Perspective: string(answer.Perspective),
		ChunksUsed:  answer.ChunksUsed,
	})
}

// Status godoc
// @Summary      Pipeline status
// @Description  Report index size and configured model identifiers
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /status [get]
func (h *ReportHandler) Status(c *fiber.Ctx) error {
	status, err := h.usecase.Status(c.Context())
	if err != nil {
		log.Printf("Error checking status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error checking status: " + err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(dto.StatusResponse{
		Status:          "healthy",
		DocumentsStored: status.DocumentsStored,
		EmbeddingModel:  status.EmbeddingModel,
		VectorDB:        status.VectorDB,
		LLMModel:        status.LLMModel,
	})
}
