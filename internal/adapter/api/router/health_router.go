package router

import (
	"github.com/labstack/echo/v4"

	"janaseva/pkg/response"
)

func SetupHealthRouter(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return response.Success(c, echo.Map{"status": "ok"})
	})
}
