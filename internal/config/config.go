// Package config loads settings from an optional YAML file and environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/stockpile/internal/store/jsonstore"
)

// Default configuration values.
const (
	DefaultDataFile = jsonstore.DefaultFileName
	DefaultLogLevel = "warn"
	DefaultTheme    = "classic"
	DefaultCurrency = money.USD
)

// Environment variable names.
const (
	EnvDataFile = "STOCKPILE_DATA_FILE"
	EnvLogLevel = "STOCKPILE_LOG_LEVEL"
	EnvLogFile  = "STOCKPILE_LOG_FILE"
	EnvTheme    = "STOCKPILE_THEME"
	EnvCurrency = "STOCKPILE_CURRENCY"
)

// Config holds the application configuration.
type Config struct {
	DataFile string `yaml:"data_file"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"` // empty means stderr
	Theme    string `yaml:"theme"`
	Currency string `yaml:"currency"` // ISO 4217 code
}

// Validation errors.
var (
	ErrInvalidLogLevel = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidTheme    = errors.New("theme must be one of: classic, neon, mono")
	ErrInvalidCurrency = errors.New("currency must be an ISO 4217 code")
	ErrEmptyDataFile   = errors.New("data file must not be empty")
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
		Currency: DefaultCurrency,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the keys present in the YAML file.
func (c *Config) loadFromFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}

// loadFromEnv overlays non-empty environment variables.
func (c *Config) loadFromEnv() {
	if val := os.Getenv(EnvDataFile); val != "" {
		c.DataFile = val
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv(EnvLogFile); val != "" {
		c.LogFile = val
	}
	if val := os.Getenv(EnvTheme); val != "" {
		c.Theme = val
	}
	if val := os.Getenv(EnvCurrency); val != "" {
		c.Currency = val
	}
}

// Validate normalizes case and rejects unknown values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return ErrEmptyDataFile
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	c.Theme = strings.ToLower(c.Theme)
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return ErrInvalidTheme
	}

	c.Currency = strings.ToUpper(c.Currency)
	if money.GetCurrency(c.Currency) == nil {
		return ErrInvalidCurrency
	}

	return nil
}
