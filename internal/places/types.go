package places

// searchTextRequest is the body posted to the Places text-search endpoint.
type searchTextRequest struct {
	TextQuery      string `json:"textQuery"`
	MaxResultCount int    `json:"maxResultCount"`
}

// searchTextResponse mirrors the subset of the upstream payload selected by
// the field mask. Everything else the API could return is deliberately not
// modelled.
type searchTextResponse struct {
	Places []Place `json:"places"`
}

// Place is a raw upstream place record prior to normalization.
type Place struct {
	DisplayName      LocalizedText `json:"displayName"`
	FormattedAddress string        `json:"formattedAddress"`
	Rating           *float64      `json:"rating,omitempty"`
	PriceLevel       string        `json:"priceLevel,omitempty"`
}

// LocalizedText is the upstream wrapper around translatable strings.
type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// errorResponse is the standard Google API error envelope returned on
// non-2xx statuses.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
