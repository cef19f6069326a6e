package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultPlacesBaseURL is the Google Places text-search endpoint used when no
// override is configured.
const DefaultPlacesBaseURL = "https://places.googleapis.com/v1/places:searchText"

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	APIKey          string
	Port            string
	PlacesBaseURL   string
	Region          string
	MaxResults      int
	UpstreamTimeout time.Duration
	RateLimitSearch RateLimitConfig
}

// Load reads configuration from environment variables and applies sane
// defaults. A missing Places API key is a fatal configuration error: the
// service must never start with an empty credential.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:          strings.TrimSpace(os.Getenv("GOOGLE_PLACES_API_KEY")),
		Port:            getEnv("PORT", "8080"),
		PlacesBaseURL:   getEnv("PLACES_BASE_URL", DefaultPlacesBaseURL),
		Region:          getEnv("PLACES_REGION", "Singapore"),
		MaxResults:      parseInt(getEnv("PLACES_MAX_RESULTS", "10"), 10),
		UpstreamTimeout: parseDuration(getEnv("UPSTREAM_TIMEOUT", "10s")),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_PLACES_API_KEY must be set")
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SEARCH", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SEARCH value: %w", err)
	}
	cfg.RateLimitSearch = rl

	return cfg, nil
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

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseInt(input string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
