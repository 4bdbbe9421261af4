package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/CaelumWraith/WraithTrack/internal/constants"
)

// Config holds all application configuration
type Config struct {
	ClientID     string
	ClientSecret string
	ArtistID     string
	DBPath       string
	DataDir      string
	Port         string
	LogLevel     string
	LogFormat    string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		ClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		ClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		ArtistID:     getEnv("ARTIST_ID", constants.DefaultArtistID),
		DBPath:       getEnv("DB_PATH", constants.DefaultDBPath),
		DataDir:      getEnv("DATA_DIR", constants.DefaultDataDir),
		Port:         getEnv("PORT", constants.DefaultPort),
		LogLevel:     getEnv("LOG_LEVEL", constants.DefaultLogLevel),
		LogFormat:    getEnv("LOG_FORMAT", constants.DefaultLogFormat),
	}
}

// ValidateCredentials checks the API credential pair. Only remote
// fetches need them; report and story generation run without.
func (c *Config) ValidateCredentials() error {
	var errors []string

	if c.ClientID == "" {
		errors = append(errors, "SPOTIFY_CLIENT_ID must be set")
	}
	if c.ClientSecret == "" {
		errors = append(errors, "SPOTIFY_CLIENT_SECRET must be set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	if c.ArtistID == "" {
		errors = append(errors, "ARTIST_ID cannot be empty")
	}

	if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty")
	}

	if c.DataDir == "" {
		errors = append(errors, "DATA_DIR cannot be empty")
	}

	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
