package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	websocketManager "school-cms/infrastructure/websocket"
	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

// WebSocketHandler streams admin notifications to the back office
type WebSocketHandler struct {
	hub *websocketManager.Hub
}

func NewWebSocketHandler() *WebSocketHandler {
	return &WebSocketHandler{hub: websocketManager.Manager}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	var userID uuid.UUID

	// Set by ProtectedWithQueryToken before the upgrade
	if user, ok := c.Locals("user").(*utils.UserContext); ok {
		userID = user.ID
	}

	logger.WebSocket("connected", "Admin connected to notifications", map[string]interface{}{"user_id": userID.String()})

	h.hub.RegisterClient(c, userID)
	defer h.hub.UnregisterClient(c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WebSocketError("read_message", "WebSocket read error", err, map[string]interface{}{"user_id": userID.String()})
			}
			break
		}

		if messageType == websocket.TextMessage {
			h.hub.HandleMessage(c, message)
		}
	}
}
