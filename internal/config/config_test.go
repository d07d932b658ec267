package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amaumene/gocatalog/internal/constants"
	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TMDB_API_KEY", "API_BASE_URL", "PAGINATION_WINDOW", "POPULAR_MOVIES_SOURCE",
		"HTTP_TIMEOUT_SEC", "CACHE_SIZE", "PORT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.json"))
}

func TestLoadFailsFastWithoutCredential(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Equal(t, catalogerrors.ErrorTypeConfigurationInvalid, catalogerrors.TypeOf(err))
	assert.Contains(t, err.Error(), "TMDB_API_KEY is required")
}

func TestLoadFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TMDB_API_KEY", " "+testKey+" ")
	t.Setenv("PAGINATION_WINDOW", "9")
	t.Setenv("POPULAR_MOVIES_SOURCE", constants.PopularSourceNowPlaying)
	t.Setenv("API_BASE_URL", "http://localhost:9999/3/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, testKey, cfg.TMDBAPIKey)
	assert.Equal(t, 9, cfg.PaginationWindow)
	assert.Equal(t, constants.PopularSourceNowPlaying, cfg.PopularMoviesSource)
	assert.Equal(t, "http://localhost:9999/3", cfg.APIBaseURL)
	assert.Equal(t, constants.DefaultHTTPTimeout, cfg.HTTPTimeout())
	assert.Equal(t, "012...def", cfg.MaskedAPIKey())
}

func TestLoadYAMLFileWithEnvOverride(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "tmdb_api_key: " + testKey + "\nport: \"8088\"\npagination_window: 5\nhttp_timeout_sec: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, testKey, cfg.TMDBAPIKey)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.PaginationWindow)
	assert.Equal(t, 3, cfg.HTTPTimeoutSec)
}

func TestLoadJSONFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"TMDB_API_KEY":"` + testKey + `","POPULAR_MOVIES_SOURCE":"now_playing"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, constants.PopularSourceNowPlaying, cfg.PopularMoviesSource)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"window too small", func(c *Config) { c.PaginationWindow = 3 }, "PAGINATION_WINDOW"},
		{"window too large", func(c *Config) { c.PaginationWindow = 11 }, "PAGINATION_WINDOW"},
		{"unknown popular source", func(c *Config) { c.PopularMoviesSource = "top_rated" }, "POPULAR_MOVIES_SOURCE"},
		{"malformed key", func(c *Config) { c.TMDBAPIKey = "abc" }, "invalid format"},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, "LOG_LEVEL"},
		{"empty log level", func(c *Config) { c.LogLevel = "" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.TMDBAPIKey = testKey
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSnapshotRetention(t *testing.T) {
	cfg := Default()
	cfg.TMDBAPIKey = testKey
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*24*time.Hour, cfg.SnapshotRetention())

	cfg.SnapshotRetentionDays = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30, cfg.SnapshotRetentionDays)

	isolateEnv(t)
	t.Setenv("TMDB_API_KEY", testKey)
	t.Setenv("SNAPSHOT_RETENTION_DAYS", "3")
	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, loaded.SnapshotRetention())
}

func TestLoadRejectsNonIntegerEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TMDB_API_KEY", testKey)
	t.Setenv("CACHE_SIZE", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_SIZE must be an integer")
}
