package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/makanlab/restaurant-locator/internal/places"
	"github.com/makanlab/restaurant-locator/internal/service"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	payload := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	return c.JSON(status, payload)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{
		Status:  "error",
		Message: message,
	}
	return c.JSON(status, payload)
}

// ErrorFrom maps a service error onto the envelope: invalid input becomes a
// 400, any upstream failure a 502 with the sanitized upstream detail.
func ErrorFrom(c echo.Context, err error) error {
	if errors.Is(err, service.ErrEmptyQuery) {
		return Error(c, http.StatusBadRequest, service.ErrEmptyQuery.Error())
	}

	var ue *places.UpstreamError
	if errors.As(err, &ue) {
		return Error(c, http.StatusBadGateway, ue.Error())
	}

	return Error(c, http.StatusInternalServerError, "internal error")
}
