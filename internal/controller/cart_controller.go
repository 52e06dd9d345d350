package controller

import (
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type cartController struct {
	service service.ICartService
}

func NewCartController(service service.ICartService) ICartController {
	return &cartController{service: service}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
}

func (c *cartController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetCart(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cart", res))
}
