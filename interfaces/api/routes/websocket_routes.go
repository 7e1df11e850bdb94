package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"school-cms/interfaces/api/middleware"
	websocketHandler "school-cms/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, jwtSecret string) {
	wsHandler := websocketHandler.NewWebSocketHandler()

	// Browsers cannot send headers on the upgrade, so the token comes in ?token=
	app.Use("/ws", middleware.ProtectedWithQueryToken(jwtSecret), wsHandler.WebSocketUpgrade)
	app.Get("/ws/notifications", websocket.New(wsHandler.HandleWebSocket))
}
