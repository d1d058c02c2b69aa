package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PRACTICEDESK_API_URL")
	os.Unsetenv("PRACTICEDESK_STREAM_URL")
	os.Unsetenv("PRACTICEDESK_ROLE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL == "" {
		t.Errorf("expected a default API URL")
	}
	if cfg.StreamURL != cfg.APIURL+"/practice-events" {
		t.Errorf("expected stream URL derived from API URL, got %s", cfg.StreamURL)
	}
}

func TestLoad_InvalidRole(t *testing.T) {
	os.Setenv("PRACTICEDESK_ROLE", "SUPERUSER")
	defer os.Unsetenv("PRACTICEDESK_ROLE")

	if _, err := Load(); err == nil {
		t.Errorf("expected error for invalid role")
	}
}

func TestLoad_ExplicitStreamURL(t *testing.T) {
	os.Setenv("PRACTICEDESK_STREAM_URL", "http://example.test/events")
	defer os.Unsetenv("PRACTICEDESK_STREAM_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StreamURL != "http://example.test/events" {
		t.Errorf("explicit stream URL must win, got %s", cfg.StreamURL)
	}
}
