// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/archons/backend/internal/models"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
)

type Config struct {
	// HTTP Server
	APIURL string
	Port   string

	// Database
	DBDriver string
	DBDSN    string

	// Ledger
	DefaultCurrency string

	// AMQP
	AMQPURL      string
	AMQPExchange string

	// Logging
	GinMode   string
	LogFormat string
}

// Load reads the configuration from the environment.
//
// Variables from a .env file in the working directory are loaded first.
// They never override variables that are already set.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	cfg := &Config{
		APIURL: getEnv("API_URL", "http://localhost:8080"),
		Port:   getEnv("PORT", "8080"),

		DBDriver: getEnv("DB_DRIVER", string(models.DriverSQLite)),
		DBDSN:    getEnv("DB_DSN", "data/ledger.db"),

		DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "INR")),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "ledger"),

		// gin uses debug as the default mode, we use release for
		// security reasons
		GinMode:   getEnv("GIN_MODE", "release"),
		LogFormat: getEnv("LOG_FORMAT", ""),
	}

	return cfg, nil
}

// URL returns the parsed API URL without a trailing slash.
func (c *Config) URL() (*url.URL, error) {
	return url.Parse(strings.TrimSuffix(c.APIURL, "/"))
}

// HumanLogs reports if logs are written in a human readable format.
//
// If the format is not set explicitly, it defaults to human readable
// for development and JSON for release.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

// Validate validates the configuration and returns an error listing all
// problems found.
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate API URL
	if u, err := c.URL(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	// Validate database
	if !slices.Contains(models.Drivers, models.Driver(c.DBDriver)) {
		errors = append(errors, fmt.Sprintf("invalid database driver '%s': must be one of %v", c.DBDriver, models.Drivers))
	}

	if c.DBDSN == "" {
		errors = append(errors, "database DSN cannot be empty")
	}

	// Validate currency
	if _, err := models.ParseCurrency(c.DefaultCurrency); err != nil {
		errors = append(errors, fmt.Sprintf("invalid default currency: %v", err))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	// Validate logging
	if c.GinMode != "debug" && c.GinMode != "release" && c.GinMode != "test" {
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of debug, release or test", c.GinMode))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	// Return combined errors
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
