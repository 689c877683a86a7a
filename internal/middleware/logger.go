package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sale-relay/internal/logger"
)

// ContextLogger attaches a logger tagged with the request id to the request
// context. It must run after echo's RequestID middleware.
func ContextLogger(base *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			l := base.With(zap.String("request_id", id))

			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), l)))
			return next(c)
		}
	}
}
