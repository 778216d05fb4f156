package server

import (
	"log"

	"plagiarism-detection-be/internal/bootstrap"
	"plagiarism-detection-be/internal/config"
	"plagiarism-detection-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.MetaController.RegisterRoutes(app, api)
	c.SimilarityController.RegisterRoutes(api)
	c.DocumentController.RegisterRoutes(api)
	c.SummarizeController.RegisterRoutes(api)
	c.FaqController.RegisterRoutes(api)

	// Catch-all 404 pointing at the API surface
	app.Use(func(ctx *fiber.Ctx) error {
		return serverutils.NewNotFoundError(
			"Resource not found. Available endpoints: /api/similarity/compare, /api/summarize, /api/faqs, /api/documents/upload",
		)
	})
}
