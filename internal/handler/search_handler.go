package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/makanlab/restaurant-locator/internal/dto"
)

// Searcher is the contract the HTTP handler needs from the search service.
type Searcher interface {
	Search(ctx context.Context, query string) ([]dto.RestaurantResult, error)
}

// SearchHandler serves restaurant search requests over the REST surface.
type SearchHandler struct {
	svc Searcher
}

// NewSearchHandler constructs a search handler.
func NewSearchHandler(svc Searcher) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles POST /search requests.
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	results, err := h.svc.Search(c.Request().Context(), req.Query)
	if err != nil {
		return ErrorFrom(c, err)
	}
	if results == nil {
		results = []dto.RestaurantResult{}
	}

	message := "search completed"
	if len(results) == 0 {
		message = "no places found for your query"
	}

	return Success(c, http.StatusOK, message, map[string]any{
		"results": results,
		"count":   len(results),
	})
}
