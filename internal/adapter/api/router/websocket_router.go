package router

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/adapter/api/handler"
)

// SetupWebSocketRouter registers the realtime endpoint. Authentication uses
// a token query parameter because browsers cannot set headers on websocket
// connections.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.Handle)
}
