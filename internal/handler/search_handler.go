package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/geoask/places-api/internal/dto"
	"github.com/geoask/places-api/internal/service"
)

// User-facing messages for the search endpoint error envelope.
const (
	msgNoQuery       = "No query provided."
	msgConfigError   = "Server configuration error."
	msgUpstreamError = "Failed to fetch results."
	msgInternalError = "Internal server error."
)

// Searcher runs a search request end to end.
type Searcher interface {
	Search(ctx context.Context, query string, coords *service.Coordinates) (dto.SearchResponse, error)
}

// SearchHandler serves the places search endpoint.
type SearchHandler struct {
	service Searcher
}

// NewSearchHandler wires the handler.
func NewSearchHandler(svc Searcher) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Handle serves GET /search requests.
func (h *SearchHandler) Handle(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return Error(c, http.StatusBadRequest, msgNoQuery)
	}

	coords := parseCoordinates(c.QueryParam("lat"), c.QueryParam("lng"))

	resp, err := h.service.Search(c.Request().Context(), query, coords)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			return Error(c, http.StatusInternalServerError, msgConfigError)
		case errors.Is(err, service.ErrUpstream):
			return Error(c, http.StatusInternalServerError, msgUpstreamError)
		default:
			return Error(c, http.StatusInternalServerError, msgInternalError)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// parseCoordinates activates location-aware behavior only when both values
// are present and numeric; anything else counts as no coordinates supplied.
func parseCoordinates(latStr, lngStr string) *service.Coordinates {
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil
	}
	return &service.Coordinates{Lat: lat, Lng: lng}
}
