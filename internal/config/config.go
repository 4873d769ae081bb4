package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/geoask/places-api/internal/geocode"
)

const defaultSearchRadiusM = 5000

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values. Provider keys may
// be empty: search requests then fail with a configuration error (OpenAI) or
// degrade to text-only answers (Maps).
type Config struct {
	Port            string
	OpenAIKey       string
	OpenAIModel     string
	MapsKey         string
	DefaultCountry  string
	Region          geocode.Region
	SearchRadiusM   uint
	RateLimitSearch RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MapsKey:        os.Getenv("MAPS_API_KEY"),
		DefaultCountry: getEnv("DEFAULT_COUNTRY", "India"),
		SearchRadiusM:  parseRadius(getEnv("SEARCH_RADIUS_M", "")),
	}

	region, err := parseRegion(getEnv("BOUNDING_REGION", "6.5,68.1,35.7,97.4"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOUNDING_REGION value: %w", err)
	}
	cfg.Region = region

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SEARCH", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SEARCH value: %w", err)
	}
	cfg.RateLimitSearch = rl

	return cfg, nil
}

func parseRegion(value string) (geocode.Region, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return geocode.Region{}, fmt.Errorf("expected format <minLat>,<minLng>,<maxLat>,<maxLng>, got %q", value)
	}

	coords := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geocode.Region{}, fmt.Errorf("invalid coordinate: %v", part)
		}
		coords[i] = v
	}

	region := geocode.Region{MinLat: coords[0], MinLng: coords[1], MaxLat: coords[2], MaxLng: coords[3]}
	if region.MinLat >= region.MaxLat || region.MinLng >= region.MaxLng {
		return geocode.Region{}, fmt.Errorf("region bounds out of order: %q", value)
	}
	return region, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func parseRadius(value string) uint {
	v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil || v == 0 {
		return defaultSearchRadiusM
	}
	return uint(v)
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
