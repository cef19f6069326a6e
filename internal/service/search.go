package service

import (
	"context"
	"errors"
	"strings"

	"github.com/makanlab/restaurant-locator/internal/dto"
)

// ErrEmptyQuery indicates the caller supplied an empty or whitespace-only
// search query. No upstream call is made in that case.
var ErrEmptyQuery = errors.New("query must not be empty")

// RestaurantSearcher is the narrow contract the search service needs from the
// places adapter. Tests substitute a deterministic stub.
type RestaurantSearcher interface {
	Search(ctx context.Context, query string) ([]dto.RestaurantResult, error)
}

// SearchService validates queries and delegates to the places adapter.
type SearchService struct {
	places RestaurantSearcher
}

// NewSearchService constructs a new SearchService.
func NewSearchService(places RestaurantSearcher) *SearchService {
	return &SearchService{places: places}
}

// Search trims and validates the query, then runs one upstream search. An
// empty result list is a successful outcome, distinct from an error.
func (s *SearchService) Search(ctx context.Context, query string) ([]dto.RestaurantResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return s.places.Search(ctx, query)
}
