package controller

import (
	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISummarizeController interface {
	RegisterRoutes(r fiber.Router)
	Summarize(ctx *fiber.Ctx) error
}

type summarizeController struct {
	summarizeService service.ISummarizeService
}

func NewSummarizeController(summarizeService service.ISummarizeService) ISummarizeController {
	return &summarizeController{
		summarizeService: summarizeService,
	}
}

func (c *summarizeController) RegisterRoutes(r fiber.Router) {
	r.Post("summarize", c.Summarize)
}

func (c *summarizeController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}

	res, err := c.summarizeService.Summarize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
