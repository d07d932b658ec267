package main

import (
	"context"
	"fmt"

	"github.com/amaumene/gocatalog/internal/cache"
	"github.com/amaumene/gocatalog/internal/config"
	"github.com/amaumene/gocatalog/internal/constants"
	"github.com/amaumene/gocatalog/internal/database"
	"github.com/amaumene/gocatalog/internal/handlers"
	"github.com/amaumene/gocatalog/internal/middleware"
	"github.com/amaumene/gocatalog/internal/scheduler"
	"github.com/amaumene/gocatalog/internal/services"
	"github.com/amaumene/gocatalog/pkg/logger"
	"github.com/amaumene/gocatalog/pkg/ratelimiter"
	"github.com/amaumene/gocatalog/pkg/security"
	"github.com/gin-gonic/gin"
)

// App holds everything built at startup.
type App struct {
	Config    *config.Config
	Logger    logger.Logger
	DB        database.Database
	Services  *services.Container
	Cleanup   *services.CleanupService
	Scheduler *scheduler.Scheduler
	Router    *gin.Engine
}

// NewApp wires the application from a validated configuration.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: log}

	app.initializeDatabase()
	app.initializeServices()
	if err := app.initializeScheduler(); err != nil {
		app.Close()
		return nil, err
	}
	app.initializeRouter()

	return app, nil
}

// initializeDatabase opens the genre snapshot store. The catalog works
// without it, so a failure only disables the fallback.
func (a *App) initializeDatabase() {
	db, err := database.NewBolt(a.Config.DatabasePath)
	if err != nil {
		a.Logger.Warnf("[App] genre snapshot store unavailable, continuing without it: %v", err)
		return
	}
	a.DB = db
	a.Logger.Infof("[App] genre snapshot store opened at %s", a.Config.DatabasePath)
}

func (a *App) initializeServices() {
	if !security.NewAPIKeyValidator().IsValidTMDBKey(a.Config.TMDBAPIKey) {
		a.Logger.Warnf("[App] TMDB credential %s does not look like a v3 API key", a.Config.MaskedAPIKey())
	}

	memoryCache := cache.New(a.Config.CacheSize, a.Config.CacheTTL())
	tmdbService := services.NewTMDB(a.Config, nil, a.Logger)

	a.Services = services.NewContainer(a.Config, tmdbService, memoryCache, a.DB, a.Logger)
	a.Cleanup = services.NewCleanupService(memoryCache, a.DB, a.Logger)
	a.Cleanup.SetRetentionPeriod(a.Config.SnapshotRetention())

	a.Logger.Infof("[App] services initialized (credential %s, language %s)", a.Config.MaskedAPIKey(), a.Config.Language)
}

func (a *App) initializeScheduler() error {
	a.Scheduler = scheduler.New(a.Logger)

	jobs := []scheduler.Job{
		{
			Name:     "genre-refresh",
			Schedule: a.Config.GenreRefreshSchedule,
			Run: func(ctx context.Context) {
				ctx, cancel := context.WithTimeout(ctx, constants.GenreRefreshTimeout)
				defer cancel()
				if err := a.Services.Genres.Refresh(ctx); err != nil {
					a.Logger.Warnf("[App] genre refresh failed: %v", err)
				}
			},
		},
		{
			Name:     "cleanup",
			Schedule: a.Config.CacheCleanupSchedule,
			Run: func(context.Context) {
				a.Cleanup.CleanupNow()
			},
		},
	}

	for _, job := range jobs {
		if err := a.Scheduler.Add(job); err != nil {
			return fmt.Errorf("failed to schedule background jobs: %w", err)
		}
	}
	return nil
}

func (a *App) initializeRouter() {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(a.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Gzip())

	limiter := ratelimiter.NewKeyedLimiter(a.Services.Cache,
		int64(a.Config.RateLimitCapacity), int64(a.Config.RateLimitRefill))
	r.Use(middleware.RateLimit(limiter, a.Logger))

	handlers.New(a.Services, a.Config).RegisterRoutes(r)
	a.Router = r
}

// WarmGenres loads genre lists in the background so the first request
// does not pay for them.
func (a *App) WarmGenres() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.GenreWarmupTimeout)
		defer cancel()
		a.Services.Genres.Warm(ctx, constants.GenreSnapshotMaxAge)
	}()
}

// Close stops background work and releases the store.
func (a *App) Close() {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Errorf("[App] failed to close genre snapshot store: %v", err)
		}
	}
}
