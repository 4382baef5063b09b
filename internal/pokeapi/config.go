package pokeapi

import (
	"os"
	"time"
)

// Config holds PokéAPI connection settings.
type Config struct {
	// BaseURL is the API root (default https://pokeapi.co/api/v2)
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the API
	UserAgent string
}

const (
	// DefaultBaseURL is the public PokéAPI endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this server to PokéAPI
	DefaultUserAgent = "pokedex-mcp-server/1.0"
)

// LoadConfig loads configuration from environment variables, falling back
// to defaults. The public API needs no credentials, so nothing is required.
func LoadConfig() *Config {
	baseURL := os.Getenv("POKEAPI_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("POKEAPI_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}

	userAgent := os.Getenv("POKEAPI_USER_AGENT")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Config{
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
	}
}
