package controller

import (
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"
	"storefront-be/pkg/bundle"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Recommendations(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IRecommendationService
}

func NewProductController(service service.IRecommendationService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get(":handle", c.Show)
	h.Get(":handle/recommendations", c.Recommendations)
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.GetProduct(ctx.UserContext(), ctx.Params("handle"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get product", res))
}

func (c *productController) Recommendations(ctx *fiber.Ctx) error {
	policy := bundle.PolicyName(ctx.Query("policy"))

	res, err := c.service.GetRecommendations(ctx.UserContext(), ctx.Params("handle"), policy)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}
