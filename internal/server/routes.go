package server

import (
	"order-service/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cartH *handler.CartHandler, orderH *handler.OrderHandler) {
	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}
