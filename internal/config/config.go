// Package config loads the Azure DevOps connection settings from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL    = "https://dev.azure.com"
	DefaultAPIVersion = "6.0"
)

// Config holds the organization, repository and credential settings.
type Config struct {
	Organization string
	Project      string
	Repository   string
	User         string
	PAT          string
	DisplayName  string
	BaseURL      string
	APIVersion   string
	LogLevel     string
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set in the process environment. An empty path means ".env" in the
// working directory, which may be absent.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables.
// Required: DEVOPS_ORG, DEVOPS_PROJECT, DEVOPS_REPO, DEVOPS_PAT.
// Optional with defaults: DEVOPS_BASE_URL (https://dev.azure.com),
// DEVOPS_API_VERSION (6.0), LOG_LEVEL (info).
func Load() (*Config, error) {
	cfg := &Config{
		Organization: os.Getenv("DEVOPS_ORG"),
		Project:      os.Getenv("DEVOPS_PROJECT"),
		Repository:   os.Getenv("DEVOPS_REPO"),
		User:         os.Getenv("DEVOPS_USER"),
		PAT:          os.Getenv("DEVOPS_PAT"),
		DisplayName:  os.Getenv("DEVOPS_DISPLAY_NAME"),
		BaseURL:      getEnv("DEVOPS_BASE_URL", DefaultBaseURL),
		APIVersion:   getEnv("DEVOPS_API_VERSION", DefaultAPIVersion),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing required variable at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Organization == "" {
		missing = append(missing, "DEVOPS_ORG")
	}
	if c.Project == "" {
		missing = append(missing, "DEVOPS_PROJECT")
	}
	if c.Repository == "" {
		missing = append(missing, "DEVOPS_REPO")
	}
	if c.PAT == "" {
		missing = append(missing, "DEVOPS_PAT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
