package controller

import (
	"io"

	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Check(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService   service.IDocumentService
	similarityService service.ISimilarityService
}

func NewDocumentController(
	documentService service.IDocumentService,
	similarityService service.ISimilarityService,
) IDocumentController {
	return &documentController{
		documentService:   documentService,
		similarityService: similarityService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/documents")
	h.Post("upload", c.Upload)
	h.Get("", c.List)
	h.Post(":id/check", c.Check)
	h.Delete(":id", c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewValidationError("No file provided in upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serverutils.NewProcessingError("Error uploading document")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return serverutils.NewProcessingError("Error uploading document")
	}

	res, err := c.documentService.Upload(ctx.Context(), fileHeader.Filename, content)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	res, err := c.documentService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *documentController) Check(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		// An id we never issued is just an unknown document
		return serverutils.NewNotFoundError("Document not found")
	}

	res, err := c.similarityService.CheckAgainstAll(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewNotFoundError("Document not found")
	}

	res, err := c.documentService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
