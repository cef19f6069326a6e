package dto

// SearchRequest is the payload accepted by the search endpoint.
type SearchRequest struct {
	Query string `json:"query"`
}

// RestaurantResult is a single normalized place record returned to callers.
// Rating and PriceLevel are pointers so that "unknown" is distinguishable
// from a legitimate zero value.
type RestaurantResult struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
}
