// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/amaumene/gocatalog/internal/constants"
	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/amaumene/gocatalog/pkg/logger"
	"github.com/amaumene/gocatalog/pkg/security"
	"gopkg.in/yaml.v3"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default genre snapshot database path
	defaultDatabasePath = "./catalog.db"
)

// Config holds the application configuration.
// It is built once at startup and passed explicitly to every component.
type Config struct {
	// Provider credential, required
	TMDBAPIKey string `json:"TMDB_API_KEY" yaml:"tmdb_api_key"`

	// Provider endpoints
	APIBaseURL         string `json:"API_BASE_URL" yaml:"api_base_url"`
	ImageBaseURL       string `json:"IMAGE_BASE_URL" yaml:"image_base_url"`
	PlaceholderBaseURL string `json:"PLACEHOLDER_BASE_URL" yaml:"placeholder_base_url"`
	Language           string `json:"LANGUAGE" yaml:"language"`
	HTTPTimeoutSec     int    `json:"HTTP_TIMEOUT_SEC" yaml:"http_timeout_sec"`

	// Server
	Port     string `json:"PORT" yaml:"port"`
	LogLevel string `json:"LOG_LEVEL" yaml:"log_level"`

	// Catalog behaviour
	PaginationWindow    int    `json:"PAGINATION_WINDOW" yaml:"pagination_window"`
	PopularMoviesSource string `json:"POPULAR_MOVIES_SOURCE" yaml:"popular_movies_source"`

	// Storage settings
	DatabasePath  string `json:"DATABASE_PATH" yaml:"database_path"`
	CacheSize     int    `json:"CACHE_SIZE" yaml:"cache_size"`
	CacheTTLHours int    `json:"CACHE_TTL_HOURS" yaml:"cache_ttl_hours"`

	// Genre snapshots older than this are pruned by the cleanup job
	SnapshotRetentionDays int `json:"SNAPSHOT_RETENTION_DAYS" yaml:"snapshot_retention_days"`

	// Schedules (cron expressions)
	GenreRefreshSchedule string `json:"GENRE_REFRESH_SCHEDULE" yaml:"genre_refresh_schedule"`
	CacheCleanupSchedule string `json:"CACHE_CLEANUP_SCHEDULE" yaml:"cache_cleanup_schedule"`

	// Inbound rate limiting
	RateLimitCapacity int `json:"RATE_LIMIT_CAPACITY" yaml:"rate_limit_capacity"`
	RateLimitRefill   int `json:"RATE_LIMIT_REFILL" yaml:"rate_limit_refill"`
}

// Default returns a configuration populated with default values and no credential.
func Default() *Config {
	return &Config{
		APIBaseURL:            constants.DefaultAPIBaseURL,
		ImageBaseURL:          constants.DefaultImageBaseURL,
		PlaceholderBaseURL:    constants.DefaultPlaceholderBaseURL,
		Language:              constants.DefaultLanguage,
		HTTPTimeoutSec:        int(constants.DefaultHTTPTimeout / time.Second),
		Port:                  constants.DefaultPort,
		LogLevel:              constants.DefaultLogLevel,
		PaginationWindow:      constants.DefaultPaginationWindow,
		PopularMoviesSource:   constants.PopularSourcePopular,
		DatabasePath:          defaultDatabasePath,
		CacheSize:             constants.DefaultCacheSize,
		CacheTTLHours:         constants.DefaultCacheTTL,
		SnapshotRetentionDays: int(constants.GenreSnapshotRetention / (24 * time.Hour)),
		GenreRefreshSchedule:  constants.DefaultGenreRefreshSchedule,
		CacheCleanupSchedule:  constants.DefaultCacheCleanupSchedule,
		RateLimitCapacity:     constants.InboundRateCapacity,
		RateLimitRefill:       constants.InboundRateRefill,
	}
}

// Load reads configuration from an optional config file and environment variables.
// Environment variables take precedence over file values.
// Returns an error if the configuration is invalid, including a missing credential.
func Load() (*Config, error) {
	cfg := Default()

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, catalogerrors.NewConfigurationError("failed to load config file "+configFile, err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads configuration from a JSON or YAML file, chosen by extension.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() error {
	stringVars := map[string]*string{
		"TMDB_API_KEY":           &c.TMDBAPIKey,
		"API_BASE_URL":           &c.APIBaseURL,
		"IMAGE_BASE_URL":         &c.ImageBaseURL,
		"PLACEHOLDER_BASE_URL":   &c.PlaceholderBaseURL,
		"LANGUAGE":               &c.Language,
		"PORT":                   &c.Port,
		"LOG_LEVEL":              &c.LogLevel,
		"POPULAR_MOVIES_SOURCE":  &c.PopularMoviesSource,
		"DATABASE_PATH":          &c.DatabasePath,
		"GENRE_REFRESH_SCHEDULE": &c.GenreRefreshSchedule,
		"CACHE_CLEANUP_SCHEDULE": &c.CacheCleanupSchedule,
	}
	for key, dst := range stringVars {
		if value := os.Getenv(key); value != "" {
			*dst = value
		}
	}

	intVars := map[string]*int{
		"HTTP_TIMEOUT_SEC":        &c.HTTPTimeoutSec,
		"PAGINATION_WINDOW":       &c.PaginationWindow,
		"CACHE_SIZE":              &c.CacheSize,
		"CACHE_TTL_HOURS":         &c.CacheTTLHours,
		"SNAPSHOT_RETENTION_DAYS": &c.SnapshotRetentionDays,
		"RATE_LIMIT_CAPACITY":     &c.RateLimitCapacity,
		"RATE_LIMIT_REFILL":       &c.RateLimitRefill,
	}
	for key, dst := range intVars {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return catalogerrors.NewConfigurationError(fmt.Sprintf("%s must be an integer, got %q", key, value), err)
		}
		*dst = n
	}
	return nil
}

// Validate checks if the configuration is valid.
// The provider credential is the only value without a usable default.
func (c *Config) Validate() error {
	validator := security.NewAPIKeyValidator()
	c.TMDBAPIKey = validator.SanitizeAPIKey(c.TMDBAPIKey)
	if c.TMDBAPIKey == "" {
		return catalogerrors.NewConfigurationError("TMDB_API_KEY is required but not set", nil)
	}
	if !validator.ValidateAPIKey(c.TMDBAPIKey) {
		return catalogerrors.NewConfigurationError(
			fmt.Sprintf("TMDB_API_KEY has an invalid format (key: %s)", validator.MaskAPIKey(c.TMDBAPIKey)), nil)
	}

	if c.PaginationWindow < constants.MinPaginationWindow || c.PaginationWindow > constants.MaxPaginationWindow {
		return catalogerrors.NewConfigurationError(fmt.Sprintf("PAGINATION_WINDOW must be between %d and %d, got %d",
			constants.MinPaginationWindow, constants.MaxPaginationWindow, c.PaginationWindow), nil)
	}

	if !logger.ValidLevel(c.LogLevel) {
		return catalogerrors.NewConfigurationError(
			fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel), nil)
	}

	switch c.PopularMoviesSource {
	case constants.PopularSourcePopular, constants.PopularSourceNowPlaying:
	default:
		return catalogerrors.NewConfigurationError(fmt.Sprintf("POPULAR_MOVIES_SOURCE must be %q or %q, got %q",
			constants.PopularSourcePopular, constants.PopularSourceNowPlaying, c.PopularMoviesSource), nil)
	}

	if c.HTTPTimeoutSec <= 0 {
		c.HTTPTimeoutSec = int(constants.DefaultHTTPTimeout / time.Second)
	}
	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}
	if c.SnapshotRetentionDays <= 0 {
		c.SnapshotRetentionDays = int(constants.GenreSnapshotRetention / (24 * time.Hour))
	}
	if c.CacheTTLHours <= 0 {
		c.CacheTTLHours = constants.DefaultCacheTTL
	}
	c.APIBaseURL = strings.TrimSuffix(c.APIBaseURL, "/")
	if !strings.HasSuffix(c.ImageBaseURL, "/") {
		c.ImageBaseURL += "/"
	}
	if !strings.HasSuffix(c.PlaceholderBaseURL, "/") {
		c.PlaceholderBaseURL += "/"
	}

	return nil
}

// HTTPTimeout returns the outbound request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

// CacheTTL returns the in-memory cache entry lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// SnapshotRetention returns how long genre snapshots are kept.
func (c *Config) SnapshotRetention() time.Duration {
	return time.Duration(c.SnapshotRetentionDays) * 24 * time.Hour
}

// MaskedAPIKey returns the credential in a form safe for logs.
func (c *Config) MaskedAPIKey() string {
	return security.NewAPIKeyValidator().MaskAPIKey(c.TMDBAPIKey)
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
