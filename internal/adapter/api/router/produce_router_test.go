package router

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"janaseva/internal/adapter/api/handler"
	"janaseva/internal/adapter/api/middleware"
)

func TestProduceRoutes(t *testing.T) {
	e := echo.New()
	SetupProduceRouter(e, handler.NewProduceHandler(nil), middleware.NewAuthMiddleware(nil))

	paths := make(map[string]bool)
	for _, route := range e.Routes() {
		paths[route.Method+" "+route.Path] = true
	}

	assert.True(t, paths["GET /v1/produce"])
	assert.True(t, paths["GET /v1/produce/:id"])
	assert.True(t, paths["GET /v1/produce/my-products"])
	assert.True(t, paths["POST /v1/produce"])
	assert.True(t, paths["PUT /v1/produce/:id"])
	assert.True(t, paths["DELETE /v1/produce/:id"])
	assert.True(t, paths["POST /v1/produce/:id/interest"])
}
