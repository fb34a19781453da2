package router

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/adapter/api/handler"
	"janaseva/internal/adapter/api/middleware"
)

// SetupChatRouter registers chat and message routes (excluding WebSocket).
func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chatGroup := e.Group("/v1/chats")
	chatGroup.Use(authMiddleware.Authenticate)

	chatGroup.POST("", chatHandler.CreateChat)                       // POST /v1/chats - get or create a chat
	chatGroup.GET("", chatHandler.GetUserChats)                      // GET /v1/chats - list my chats
	chatGroup.GET("/:id", chatHandler.GetChat)                       // GET /v1/chats/:id
	chatGroup.GET("/:id/unread-count", chatHandler.GetUnreadCount)   // GET /v1/chats/:id/unread-count
	chatGroup.PUT("/:id/read", chatHandler.MarkRead)                 // PUT /v1/chats/:id/read
	chatGroup.DELETE("/:id", chatHandler.DeactivateChat)             // DELETE /v1/chats/:id - soft close

	chatGroup.POST("/:id/messages", chatHandler.SendMessage) // POST /v1/chats/:id/messages
	chatGroup.GET("/:id/messages", chatHandler.GetMessages)  // GET /v1/chats/:id/messages
}
