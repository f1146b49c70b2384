package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port   string
	APIURL string

	// Database
	DBConnectionString string

	// Logging
	LogFormat string
	GinMode   string
}

func Load() *Config {
	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", "http://localhost:8080"),

		DBConnectionString: getEnv("DB_CONNECTION_STRING", "data/gorm.db"),

		LogFormat: getEnv("LOG_FORMAT", ""),
		GinMode:   getEnv("GIN_MODE", "release"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	}

	// Postgres connection details come from DB_HOST and friends, the
	// connection string is only used for the SQLite file
	if _, ok := os.LookupEnv("DB_HOST"); !ok {
		if c.DBConnectionString == "" {
			errors = append(errors, "database path cannot be empty")
		} else {
			dir := filepath.Dir(c.DBConnectionString)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0o755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
