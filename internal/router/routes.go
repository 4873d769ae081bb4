package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geoask/places-api/internal/config"
	"github.com/geoask/places-api/internal/handler"
	middlewarepkg "github.com/geoask/places-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Search *handler.SearchHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	})

	e.GET("/search", handlers.Search.Handle, middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch))
}
