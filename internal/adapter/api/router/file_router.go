package router

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/adapter/api/handler"
	"janaseva/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, fileHandler *handler.FileHandler, authMiddleware *middleware.AuthMiddleware) {
	group := e.Group("/v1/files")
	group.Use(authMiddleware.Authenticate)

	group.POST("/upload", fileHandler.Upload) // POST /v1/files/upload
	group.DELETE("", fileHandler.Delete)      // DELETE /v1/files - remove a replaced image
}
