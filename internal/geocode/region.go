package geocode

// Region is a rectangular latitude/longitude envelope. Resolved coordinates
// outside it are rejected.
type Region struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// Contains reports whether the coordinate falls inside the envelope.
func (r Region) Contains(lat, lng float64) bool {
	return lat >= r.MinLat && lat <= r.MaxLat && lng >= r.MinLng && lng <= r.MaxLng
}
