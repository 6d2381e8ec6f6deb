package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ClientConfig holds everything the REST client needs
type ClientConfig struct {
	APIURL            string
	ResourcePath      string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	AuthToken         string
}

// Config holds the complete application configuration
type Config struct {
	Client *ClientConfig
	Debug  bool
}

// DefaultClientConfig provides default client settings
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		APIURL:         "http://localhost:8080",
		ResourcePath:   "/entities",
		RequestTimeout: 10 * time.Second,
	}
}

// LoadConfig loads configuration from environment variables and applies defaults
func LoadConfig() (*Config, error) {
	// Try to load .env file from multiple possible locations
	envLocations := []string{
		".env",       // Current directory
		"../../.env", // Project root when running from cmd/client
	}

	envLoaded := false
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		// Silent failure if no .env exists, which is fine
		_ = godotenv.Load()
	}

	clientConfig := DefaultClientConfig()

	if url := os.Getenv("API_URL"); url != "" {
		clientConfig.APIURL = url
	}

	if path := os.Getenv("RESOURCE_PATH"); path != "" {
		clientConfig.ResourcePath = path
	}

	if timeoutStr := os.Getenv("REQUEST_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", timeoutStr, err)
		}
		clientConfig.RequestTimeout = timeout
	}

	if rpsStr := os.Getenv("REQUESTS_PER_SECOND"); rpsStr != "" {
		rps, err := strconv.ParseFloat(rpsStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUESTS_PER_SECOND %q: %w", rpsStr, err)
		}
		clientConfig.RequestsPerSecond = rps
	}

	clientConfig.AuthToken = os.Getenv("AUTH_TOKEN")

	config := &Config{
		Client: clientConfig,
		Debug:  false,
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		config.Debug = true
	}

	return config, nil
}
