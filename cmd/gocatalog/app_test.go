package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/amaumene/gocatalog/internal/config"
	"github.com/amaumene/gocatalog/internal/middleware"
	"github.com/amaumene/gocatalog/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.TMDBAPIKey = "0123456789abcdef0123456789abcdef"
	cfg.DatabasePath = filepath.Join(t.TempDir(), "catalog.db")
	return cfg
}

func TestNewApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := NewApp(testConfig(t), logger.Discard())
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.DB)
	assert.Equal(t, 2, app.Scheduler.Len())

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAppRejectsBadSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.GenreRefreshSchedule = "every tuesday"

	_, err := NewApp(cfg, logger.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "genre-refresh")
}

func TestNewAppWithoutStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabasePath = filepath.Join(t.TempDir(), "missing", "\x00bad", "catalog.db")

	app, err := NewApp(cfg, logger.Discard())
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.DB)
}
