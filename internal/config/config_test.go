package config

import (
	"os"
	"strings"
	"testing"

	"github.com/CaelumWraith/WraithTrack/internal/constants"
)

func TestLoad(t *testing.T) {
	// Test default values
	cfg := Load()

	if cfg.Port != constants.DefaultPort {
		t.Errorf("Expected Port to be %s, got %s", constants.DefaultPort, cfg.Port)
	}

	if cfg.DBPath != constants.DefaultDBPath {
		t.Errorf("Expected DBPath to be %s, got %s", constants.DefaultDBPath, cfg.DBPath)
	}

	if cfg.ArtistID != constants.DefaultArtistID {
		t.Errorf("Expected ArtistID to be %s, got %s", constants.DefaultArtistID, cfg.ArtistID)
	}

	if cfg.DataDir != constants.DefaultDataDir {
		t.Errorf("Expected DataDir to be %s, got %s", constants.DefaultDataDir, cfg.DataDir)
	}
}

func TestLoadWithEnvVars(t *testing.T) {
	// Set environment variables
	os.Setenv("SPOTIFY_CLIENT_ID", "test-id")
	os.Setenv("SPOTIFY_CLIENT_SECRET", "test-secret")
	os.Setenv("DB_PATH", "/tmp/test.db")
	os.Setenv("PORT", "9090")
	defer func() {
		os.Unsetenv("SPOTIFY_CLIENT_ID")
		os.Unsetenv("SPOTIFY_CLIENT_SECRET")
		os.Unsetenv("DB_PATH")
		os.Unsetenv("PORT")
	}()

	cfg := Load()

	if cfg.ClientID != "test-id" {
		t.Errorf("Expected ClientID to be 'test-id', got %s", cfg.ClientID)
	}
	if cfg.ClientSecret != "test-secret" {
		t.Errorf("Expected ClientSecret to be 'test-secret', got %s", cfg.ClientSecret)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("Expected DBPath to be '/tmp/test.db', got %s", cfg.DBPath)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected Port to be '9090', got %s", cfg.Port)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got error: %v", err)
	}
}

func TestValidateMissingCredentials(t *testing.T) {
	cfg := Load()
	cfg.ClientID = ""
	cfg.ClientSecret = ""

	err := cfg.ValidateCredentials()
	if err == nil {
		t.Fatal("Expected validation error for missing credentials")
	}
	if !strings.Contains(err.Error(), "SPOTIFY_CLIENT_ID") {
		t.Errorf("Expected error to mention SPOTIFY_CLIENT_ID, got: %v", err)
	}
	if !strings.Contains(err.Error(), "SPOTIFY_CLIENT_SECRET") {
		t.Errorf("Expected error to mention SPOTIFY_CLIENT_SECRET, got: %v", err)
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := &Config{
		ClientID:     "id",
		ClientSecret: "secret",
		ArtistID:     "artist",
		DBPath:       "test.db",
		DataDir:      "data",
		Port:         "not-a-port",
		LogLevel:     "info",
		LogFormat:    "text",
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for bad port")
	}
	if !strings.Contains(err.Error(), "PORT") {
		t.Errorf("Expected error to mention PORT, got: %v", err)
	}
}

func TestValidateBadLogLevel(t *testing.T) {
	cfg := &Config{
		ClientID:     "id",
		ClientSecret: "secret",
		ArtistID:     "artist",
		DBPath:       "test.db",
		DataDir:      "data",
		Port:         "8080",
		LogLevel:     "loud",
		LogFormat:    "text",
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation error for bad log level")
	}
}
