package router

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/adapter/api/handler"
	"janaseva/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, notificationHandler *handler.NotificationHandler, authMiddleware *middleware.AuthMiddleware) {
	group := e.Group("/v1/notifications")
	group.Use(authMiddleware.Authenticate)

	group.GET("", notificationHandler.List)                    // GET /v1/notifications
	group.GET("/unread-count", notificationHandler.UnreadCount) // GET /v1/notifications/unread-count
	group.PUT("/read-all", notificationHandler.MarkAllRead)     // PUT /v1/notifications/read-all
	group.PUT("/:id/read", notificationHandler.MarkRead)        // PUT /v1/notifications/:id/read
	group.DELETE("/:id", notificationHandler.Delete)            // DELETE /v1/notifications/:id
}
