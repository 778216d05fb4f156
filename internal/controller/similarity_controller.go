package controller

import (
	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISimilarityController interface {
	RegisterRoutes(r fiber.Router)
	Compare(ctx *fiber.Ctx) error
}

type similarityController struct {
	similarityService service.ISimilarityService
}

func NewSimilarityController(similarityService service.ISimilarityService) ISimilarityController {
	return &similarityController{
		similarityService: similarityService,
	}
}

func (c *similarityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/similarity")
	h.Post("compare", c.Compare)
}

func (c *similarityController) Compare(ctx *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}

	res, err := c.similarityService.Compare(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
