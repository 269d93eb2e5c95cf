package server

import (
	"order-service/internal/handler"
	appmw "order-service/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立てて返す（起動はしない）。
func New(cartH *handler.CartHandler, orderH *handler.OrderHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(appmw.RequestID())

	RegisterRoutes(e, cartH, orderH)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
