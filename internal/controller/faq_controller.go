package controller

import (
	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFaqController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
}

type faqController struct {
	faqService service.IFaqService
}

func NewFaqController(faqService service.IFaqService) IFaqController {
	return &faqController{
		faqService: faqService,
	}
}

func (c *faqController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/faqs")
	h.Get("", c.List)
	h.Post("add", c.Add)
}

func (c *faqController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "")

	res, err := c.faqService.List(ctx.Context(), category)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *faqController) Add(ctx *fiber.Ctx) error {
	var req dto.AddFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.faqService.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
