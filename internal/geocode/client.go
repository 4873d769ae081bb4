package geocode

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// ResolutionStatus tags the outcome of resolving one candidate name.
type ResolutionStatus int

const (
	StatusUnresolved ResolutionStatus = iota
	StatusGeocoded
	StatusPlaceFound
	StatusOutOfRegion
)

// Place is a resolved coordinate with provider metadata.
type Place struct {
	Name             string
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	Rating           *float64
	ProviderID       string
}

// Resolution is the tagged result of a candidate lookup: either a usable
// place, a rejection because the match fell outside the region, or nothing.
type Resolution struct {
	Status ResolutionStatus
	Place  Place
}

// Resolved reports whether the lookup produced a usable in-region place.
func (r Resolution) Resolved() bool {
	return r.Status == StatusGeocoded || r.Status == StatusPlaceFound
}

// Client resolves place names against the Google Maps Web Service APIs.
type Client struct {
	maps           *maps.Client
	region         Region
	defaultCountry string
	radiusMeters   uint
}

// NewClient builds a resolver from an API key. Extra options allow tests to
// redirect the underlying client at a mock server.
func NewClient(apiKey string, region Region, defaultCountry string, radiusMeters uint, extra ...maps.ClientOption) (*Client, error) {
	opts := append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, extra...)
	mc, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &Client{
		maps:           mc,
		region:         region,
		defaultCountry: defaultCountry,
		radiusMeters:   radiusMeters,
	}, nil
}

// Resolve attempts a direct geocoding lookup, then a proximity-biased place
// search. Lookup failures count as no result; an out-of-region match rejects
// the candidate with no further fallback.
func (c *Client) Resolve(ctx context.Context, name string, lat, lng float64) Resolution {
	if place, ok := c.geocode(ctx, name); ok {
		return c.checkRegion(place, StatusGeocoded)
	}
	if place, ok := c.textSearch(ctx, name, lat, lng); ok {
		return c.checkRegion(place, StatusPlaceFound)
	}
	return Resolution{Status: StatusUnresolved}
}

func (c *Client) checkRegion(place Place, status ResolutionStatus) Resolution {
	if !c.region.Contains(place.Latitude, place.Longitude) {
		return Resolution{Status: StatusOutOfRegion}
	}
	return Resolution{Status: status, Place: place}
}

func (c *Client) geocode(ctx context.Context, name string) (Place, bool) {
	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: name})
	if err != nil || len(results) == 0 {
		return Place{}, false
	}
	best := results[0]
	return Place{
		Name:             name,
		Latitude:         best.Geometry.Location.Lat,
		Longitude:        best.Geometry.Location.Lng,
		FormattedAddress: best.FormattedAddress,
		ProviderID:       best.PlaceID,
	}, true
}

func (c *Client) textSearch(ctx context.Context, name string, lat, lng float64) (Place, bool) {
	resp, err := c.maps.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    fmt.Sprintf("%s near %g,%g", name, lat, lng),
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   c.radiusMeters,
	})
	if err != nil || len(resp.Results) == 0 {
		return Place{}, false
	}
	best := resp.Results[0]
	place := Place{
		Name:             name,
		Latitude:         best.Geometry.Location.Lat,
		Longitude:        best.Geometry.Location.Lng,
		FormattedAddress: best.FormattedAddress,
		ProviderID:       best.PlaceID,
	}
	if best.Rating > 0 {
		rating := float64(best.Rating)
		place.Rating = &rating
	}
	return place, true
}

// DescribeLocation reverse-geocodes the coordinate into a short human-readable
// description, preferring sublocality, then locality, then administrative
// area; the country is appended only when it differs from the default nation.
// On any failure it falls back to a plain coordinate string.
func (c *Client) DescribeLocation(ctx context.Context, lat, lng float64) string {
	fallback := fmt.Sprintf("coordinates %g, %g", lat, lng)

	results, err := c.maps.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil || len(results) == 0 {
		return fallback
	}

	var sublocality, locality, adminArea, country string
	for _, component := range results[0].AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "sublocality", "sublocality_level_1":
				if sublocality == "" {
					sublocality = component.LongName
				}
			case "locality":
				if locality == "" {
					locality = component.LongName
				}
			case "administrative_area_level_1":
				if adminArea == "" {
					adminArea = component.LongName
				}
			case "country":
				if country == "" {
					country = component.LongName
				}
			}
		}
	}

	parts := make([]string, 0, 4)
	for _, part := range []string{sublocality, locality, adminArea} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if country != "" && !strings.EqualFold(country, c.defaultCountry) {
		parts = append(parts, country)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}
