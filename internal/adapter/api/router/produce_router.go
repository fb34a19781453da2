package router

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/adapter/api/handler"
	"janaseva/internal/adapter/api/middleware"
)

func SetupProduceRouter(e *echo.Echo, produceHandler *handler.ProduceHandler, authMiddleware *middleware.AuthMiddleware) {
	// Browsing listings is public; everything else needs auth.
	e.GET("/v1/produce", produceHandler.List)
	e.GET("/v1/produce/:id", produceHandler.GetByID)

	group := e.Group("/v1/produce")
	group.Use(authMiddleware.Authenticate)

	group.POST("", produceHandler.Create)                  // POST /v1/produce
	group.GET("/my-products", produceHandler.ListMine)     // GET /v1/produce/my-products
	group.PUT("/:id", produceHandler.Update)               // PUT /v1/produce/:id
	group.DELETE("/:id", produceHandler.Delete)            // DELETE /v1/produce/:id - soft delete
	group.PUT("/:id/sold", produceHandler.MarkSold)        // PUT /v1/produce/:id/sold
	group.POST("/:id/interest", produceHandler.ExpressInterest) // POST /v1/produce/:id/interest
}
