package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderXRequestID = "X-Request-ID"

// RequestID はリクエストIDを採番してレスポンスヘッダに載せる。
// クライアントが持ち込んだIDはそのまま使う（ログ突合用）。
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Set("request_id", rid)
			c.Response().Header().Set(HeaderXRequestID, rid)

			return next(c)
		}
	}
}
