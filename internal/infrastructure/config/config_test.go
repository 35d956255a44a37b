package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Client.ServerURL != "http://localhost:8080" {
		t.Fatalf("server url = %s", cfg.Client.ServerURL)
	}
	if cfg.Client.HTTPTimeout != 10*time.Second {
		t.Fatalf("http timeout = %v", cfg.Client.HTTPTimeout)
	}
	if cfg.Client.NotifyTTL != 3*time.Second {
		t.Fatalf("notify ttl = %v", cfg.Client.NotifyTTL)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port = %s", cfg.Server.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %s", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FTMS_SERVER", "https://ftms.example.edu")
	t.Setenv("NOTIFY_TTL", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Client.ServerURL != "https://ftms.example.edu" {
		t.Fatalf("server url = %s", cfg.Client.ServerURL)
	}
	if cfg.Client.NotifyTTL != 5*time.Second {
		t.Fatalf("notify ttl = %v", cfg.Client.NotifyTTL)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %s", cfg.LogLevel)
	}
}

func TestStateFile(t *testing.T) {
	explicit := ClientConfig{StatePath: "/tmp/ftms/state.db"}
	got, err := explicit.StateFile()
	if err != nil || got != "/tmp/ftms/state.db" {
		t.Fatalf("explicit state path = %s (%v)", got, err)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err = ClientConfig{}.StateFile()
	if err != nil {
		t.Fatalf("default state path: %v", err)
	}
	if want := filepath.Join(home, ".ftms", "state.db"); got != want {
		t.Fatalf("default state path = %s, want %s", got, want)
	}
}
