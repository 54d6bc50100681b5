package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates settings for both entrypoints.
type Config struct {
	Server ServerConfig
	API    APIConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	api, err := loadAPIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, API: api}, nil
}

// ServerConfig describes the dev booking API listener.
type ServerConfig struct {
	Addr string
}

// loadServerConfig resolves the listen address.
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	if strings.Contains(port, ":") {
		// Accept ":8000" or "127.0.0.1:8000" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// APIConfig describes how the client reaches the booking backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// loadAPIConfig resolves the backend base URL and request timeout.
func loadAPIConfig() (APIConfig, error) {
	baseURL := strings.TrimSpace(os.Getenv("BOOKCHAT_API_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("BOOKCHAT_API_TIMEOUT_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return APIConfig{}, fmt.Errorf("invalid BOOKCHAT_API_TIMEOUT_SECONDS value: %q", raw)
		}
		timeout = time.Duration(seconds) * time.Second
	}

	return APIConfig{BaseURL: baseURL, Timeout: timeout}, nil
}
