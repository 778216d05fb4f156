package controller

import (
	"time"

	"plagiarism-detection-be/internal/config"

	"github.com/gofiber/fiber/v2"
)

type IMetaController interface {
	RegisterRoutes(app *fiber.App, api fiber.Router)
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	Info(ctx *fiber.Ctx) error
}

type metaController struct {
	cfg *config.Config
}

func NewMetaController(cfg *config.Config) IMetaController {
	return &metaController{
		cfg: cfg,
	}
}

func (c *metaController) RegisterRoutes(app *fiber.App, api fiber.Router) {
	app.Get("/", c.Root)
	app.Get("/health", c.Health)
	api.Get("info", c.Info)
}

var endpointMap = fiber.Map{
	"compare_texts":    "POST /api/similarity/compare",
	"summarize_text":   "POST /api/summarize",
	"get_faqs":         "GET /api/faqs",
	"upload_document":  "POST /api/documents/upload",
	"list_documents":   "GET /api/documents",
	"check_plagiarism": "POST /api/documents/{id}/check",
	"delete_document":  "DELETE /api/documents/{id}",
}

func (c *metaController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message":   "Enhanced Plagiarism Detection System",
		"version":   "2.0.0",
		"status":    "operational",
		"features":  []string{"Plagiarism Detection", "Text Summarization", "Research FAQs"},
		"endpoints": endpointMap,
	})
}

func (c *metaController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "healthy",
		"service":   "plagiarism-detector",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"features": fiber.Map{
			"similarity":    true,
			"summarization": true,
		},
	})
}

func (c *metaController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"endpoints": endpointMap,
		"models": fiber.Map{
			"similarity":    c.cfg.Ai.EmbeddingProvider + " embeddings",
			"summarization": "Extractive summarization (rule-based)",
		},
		"similarity_threshold": c.cfg.Engine.PlagiarismThreshold,
	})
}
