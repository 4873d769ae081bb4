package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the fixed JSON error envelope returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Error: message})
}
