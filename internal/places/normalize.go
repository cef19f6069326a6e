package places

import (
	"strings"

	"github.com/makanlab/restaurant-locator/internal/dto"
)

// priceLevelOrdinals maps the upstream price level enum onto a compact 0-4
// scale. PRICE_LEVEL_UNSPECIFIED is intentionally absent: an unspecified
// tier means "unknown", not "free".
var priceLevelOrdinals = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// Normalize projects raw upstream records onto the output schema, preserving
// upstream order. Records without a display name or formatted address are
// dropped; a trimmed, partial result list is a successful outcome, not an
// error. Absent rating or price level stays nil so callers can tell "unknown"
// apart from a genuine zero.
func Normalize(raw []Place) []dto.RestaurantResult {
	results := make([]dto.RestaurantResult, 0, len(raw))

	for _, place := range raw {
		name := strings.TrimSpace(place.DisplayName.Text)
		address := strings.TrimSpace(place.FormattedAddress)
		if name == "" || address == "" {
			continue
		}

		results = append(results, dto.RestaurantResult{
			Name:       name,
			Address:    address,
			Rating:     place.Rating,
			PriceLevel: priceLevelOrdinal(place.PriceLevel),
		})
	}

	return results
}

func priceLevelOrdinal(level string) *int {
	if ordinal, ok := priceLevelOrdinals[level]; ok {
		return &ordinal
	}
	return nil
}
