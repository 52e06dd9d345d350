package handler

import (
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/pkg/serverutils"
	internalWS "storefront-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// NotificationHandler upgrades authenticated users to the notification stream.
type NotificationHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewNotificationHandler(hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := serverutils.BearerToken(c)
	if tokenStr == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing token (query 'token' or Authorization header)")
	}

	userID, err := serverutils.ParseUserToken(tokenStr)
	if err != nil {
		h.logger.Warn("NotificationHandler", "Invalid token in websocket handshake", nil)
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("NotificationHandler", "Notification stream opened", map[string]interface{}{"user_id": userID})
		internalWS.ServeWs(h.hub, conn, internalWS.UserKey(userID), nil)
		h.logger.Info("NotificationHandler", "Notification stream closed", map[string]interface{}{"user_id": userID})
	})(c)
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/notifications/ws", h.ServeWs)
}
