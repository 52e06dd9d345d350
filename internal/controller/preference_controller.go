package controller

import (
	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service service.IPreferenceService
}

func NewPreferenceController(service service.IPreferenceService) IPreferenceController {
	return &preferenceController{service: service}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preferences")
	h.Get(":owner", c.Show)
	h.Put(":owner/:key", c.Update)
}

func (c *preferenceController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Load(ctx.UserContext(), ctx.Params("owner"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get preferences", res))
}

func (c *preferenceController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdatePreferenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Set(ctx.UserContext(), ctx.Params("owner"), ctx.Params("key"), *req.Value)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update preference", res))
}
