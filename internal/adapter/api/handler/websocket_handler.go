package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"janaseva/internal/infrastructure/firebase"
	"janaseva/internal/infrastructure/realtime"
	"janaseva/pkg/errors"
	"janaseva/pkg/logger"
	"janaseva/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub        *realtime.Hub
	authClient *firebase.FirebaseAuthClient
}

func NewWebSocketHandler(hub *realtime.Hub, authClient *firebase.FirebaseAuthClient) *WebSocketHandler {
	return &WebSocketHandler{
		hub:        hub,
		authClient: authClient,
	}
}

// Handle authenticates the token query parameter, upgrades the connection,
// and runs the client pumps until the socket closes. The client must send a
// join event before it receives anything.
func (h *WebSocketHandler) Handle(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("Token is required", nil))
	}

	uid, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Websocket upgrade failed for user %s: %v", uid, err)
		return err
	}

	client := realtime.NewClient(h.hub, conn, uid)
	client.Start()

	return nil
}
