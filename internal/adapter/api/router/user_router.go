package router

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/adapter/api/handler"
	"janaseva/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware) {
	group := e.Group("/v1/users")
	group.Use(authMiddleware.Authenticate)

	group.GET("/me", userHandler.GetMe)    // GET /v1/users/me
	group.PUT("/me", userHandler.UpdateMe) // PUT /v1/users/me - upsert profile
	group.GET("/:id", userHandler.GetUser) // GET /v1/users/:id - public summary
}
