package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("MAPS_API_KEY", "maps-test")
	t.Setenv("DEFAULT_COUNTRY", "Portugal")
	t.Setenv("BOUNDING_REGION", "36.8,-9.6,42.2,-6.1")
	t.Setenv("SEARCH_RADIUS_M", "2500")
	t.Setenv("RATE_LIMIT_SEARCH", "10/min")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.OpenAIKey != "sk-test" || cfg.OpenAIModel != "gpt-4o" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if cfg.MapsKey != "maps-test" || cfg.DefaultCountry != "Portugal" {
		t.Fatalf("unexpected provider config: %+v", cfg)
	}
	if cfg.Region.MinLat != 36.8 || cfg.Region.MaxLng != -6.1 {
		t.Fatalf("unexpected region: %+v", cfg.Region)
	}
	if cfg.SearchRadiusM != 2500 {
		t.Fatalf("expected radius 2500, got %d", cfg.SearchRadiusM)
	}
	if cfg.RateLimitSearch.Requests != 10 || cfg.RateLimitSearch.Interval != time.Minute {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimitSearch)
	}

	// invalid region should error
	t.Setenv("BOUNDING_REGION", "not-a-region")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid region")
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "OPENAI_API_KEY", "OPENAI_MODEL", "MAPS_API_KEY", "DEFAULT_COUNTRY", "BOUNDING_REGION", "SEARCH_RADIUS_M", "RATE_LIMIT_SEARCH"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.OpenAIModel != "gpt-4o-mini" || cfg.DefaultCountry != "India" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.OpenAIKey != "" || cfg.MapsKey != "" {
		t.Fatalf("expected empty provider keys by default")
	}
	if !cfg.Region.Contains(15.3838, 73.8578) {
		t.Fatalf("expected default region to contain Goa coordinates")
	}
	if cfg.Region.Contains(48.8566, 2.3522) {
		t.Fatalf("expected default region to exclude Paris")
	}
	if cfg.SearchRadiusM != defaultSearchRadiusM {
		t.Fatalf("expected default radius, got %d", cfg.SearchRadiusM)
	}
}

func TestParseRegion(t *testing.T) {
	region, err := parseRegion("6.5, 68.1, 35.7, 97.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if region.MinLat != 6.5 || region.MinLng != 68.1 || region.MaxLat != 35.7 || region.MaxLng != 97.4 {
		t.Fatalf("unexpected region: %+v", region)
	}

	if _, err := parseRegion("1,2,3"); err == nil {
		t.Fatalf("expected error for wrong arity")
	}
	if _, err := parseRegion("a,b,c,d"); err == nil {
		t.Fatalf("expected error for non-numeric values")
	}
	if _, err := parseRegion("35.7,68.1,6.5,97.4"); err == nil {
		t.Fatalf("expected error for inverted latitude bounds")
	}
}

func TestParseRateLimit(t *testing.T) {
	cfg, err := parseRateLimit("5/sec")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Requests != 5 || cfg.Interval != time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	if _, err := parseRateLimit("bad-format"); err == nil {
		t.Fatalf("expected error for malformed value")
	}
	if _, err := parseRateLimit("0/min"); err == nil {
		t.Fatalf("expected error for zero requests")
	}
	if _, err := parseRateLimit("5/day"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestParseRadius(t *testing.T) {
	if parseRadius("1200") != 1200 {
		t.Fatalf("expected parsed radius")
	}
	if parseRadius("") != defaultSearchRadiusM {
		t.Fatalf("expected fallback radius for empty value")
	}
	if parseRadius("0") != defaultSearchRadiusM {
		t.Fatalf("expected fallback radius for zero")
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("FOO")
	if val := getEnv("FOO", "fallback"); val != "fallback" {
		t.Fatalf("expected fallback, got %s", val)
	}
	t.Setenv("FOO", "value")
	if val := getEnv("FOO", "fallback"); val != "value" {
		t.Fatalf("expected env value, got %s", val)
	}
}
