package dto

// Place is a geocoded map marker resolved from an AI answer. Rating is null
// when the match came from the geocoding path, which carries no ratings.
type Place struct {
	Name             string   `json:"name"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	FormattedAddress string   `json:"formattedAddress"`
	Rating           *float64 `json:"rating"`
	ProviderID       string   `json:"providerId"`
}

// SearchResponse is the payload returned by the search endpoint. Places is
// always present, empty when no coordinates were supplied or nothing resolved.
type SearchResponse struct {
	Results []string `json:"results"`
	Places  []Place  `json:"places"`
}
