package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Login is a liveness check kept for the storefront.
func Login(c echo.Context) error {
	return c.String(http.StatusOK, "Hello world")
}

// Health reports that the relay is up.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
