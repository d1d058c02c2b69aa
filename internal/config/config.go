// Package config reads client configuration from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"practicedesk/internal/practice"
)

// Config carries everything the composition root needs.
type Config struct {
	// APIURL is the platform REST base URL.
	APIURL string
	// StreamURL is the SSE practice-events endpoint.
	StreamURL string
	// Token is the viewer's bearer token.
	Token string
	// Role is the viewer's platform role.
	Role practice.PlatformRole
	// LogPath is where the file logger writes.
	LogPath string
}

// Load reads the environment. Only the role is validated here; URLs fail at
// connect time with a clearer error.
func Load() (Config, error) {
	// Missing .env is fine; env vars may be set directly.
	_ = godotenv.Load()

	cfg := Config{
		APIURL:    getenv("PRACTICEDESK_API_URL", "http://localhost:8000/api/v1"),
		StreamURL: os.Getenv("PRACTICEDESK_STREAM_URL"),
		Token:     os.Getenv("PRACTICEDESK_TOKEN"),
		LogPath:   getenv("PRACTICEDESK_LOG", "practicedesk.log"),
	}
	if cfg.StreamURL == "" {
		cfg.StreamURL = cfg.APIURL + "/practice-events"
	}

	role := practice.PlatformRole(getenv("PRACTICEDESK_ROLE", string(practice.PlatformMOP)))
	switch role {
	case practice.PlatformClient, practice.PlatformAdmin, practice.PlatformMOP:
		cfg.Role = role
	default:
		return Config{}, fmt.Errorf("invalid PRACTICEDESK_ROLE %q", role)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
