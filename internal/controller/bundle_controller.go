package controller

import (
	"encoding/json"

	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"
	internalWS "storefront-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IBundleController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ChangeSource(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Commit(ctx *fiber.Ctx) error
	Stream(ctx *fiber.Ctx) error
}

type bundleController struct {
	service service.IBundleService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewBundleController(service service.IBundleService, hub *internalWS.Hub, log logger.ILogger) IBundleController {
	return &bundleController{service: service, hub: hub, logger: log}
}

func (c *bundleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bundles")
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/source", c.ChangeSource)
	h.Post(":id/toggle", c.Toggle)
	h.Post(":id/commit", serverutils.JwtMiddleware, c.Commit)
	h.Get(":id/ws", c.Stream)
}

func (c *bundleController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBundleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create bundle", res))
}

func (c *bundleController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get bundle", res))
}

func (c *bundleController) ChangeSource(ctx *fiber.Ctx) error {
	var req dto.ChangeBundleSourceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ChangeSource(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success change bundle source", res))
}

func (c *bundleController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleBundleItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Toggle(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle bundle item", res))
}

func (c *bundleController) Commit(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Commit(ctx.UserContext(), ctx.Params("id"), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add bundle to cart", res))
}

// Stream pushes the current snapshot and then every change of the view.
func (c *bundleController) Stream(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	initial, err := c.service.Get(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		internalWS.ServeWs(c.hub, conn, internalWS.BundleKey(id), func(client *internalWS.Client) func() {
			push := func(res *dto.BundleResponse) {
				data, err := json.Marshal(internalWS.Envelope{Type: internalWS.MessageBundle, Data: res})
				if err != nil {
					return
				}
				if !client.Offer(data) {
					c.logger.Warn("BUNDLE", "Dropping bundle frame for slow client", map[string]interface{}{"bundle_id": id})
				}
			}

			push(initial)
			unsubscribe, err := c.service.Subscribe(id, push)
			if err != nil {
				c.logger.Warn("BUNDLE", "Bundle expired before stream attached", map[string]interface{}{"bundle_id": id})
				return func() {}
			}
			return unsubscribe
		})
	})(ctx)
}
