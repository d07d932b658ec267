// Package services provides the metadata client and the services built on it.
package services

import (
	"context"

	"github.com/amaumene/gocatalog/internal/cache"
	"github.com/amaumene/gocatalog/internal/config"
	"github.com/amaumene/gocatalog/internal/database"
	"github.com/amaumene/gocatalog/internal/images"
	"github.com/amaumene/gocatalog/internal/models"
	"github.com/amaumene/gocatalog/internal/pagination"
	"github.com/amaumene/gocatalog/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Config     *config.Config
	TMDB       TMDBService
	Views      *ViewAssembler
	Genres     *GenreDirectory
	Images     *images.Resolver
	Pagination *pagination.Coordinator
	Cache      *cache.LRUCache
	DB         database.Database
	Logger     logger.Logger
}

// TMDBService defines the interface for metadata provider operations.
type TMDBService interface {
	FetchTrending(ctx context.Context, kind, window string, page int) (models.PaginatedResult[models.MediaItem], error)
	FetchPopular(ctx context.Context, kind string, page int) (models.PaginatedResult[models.MediaItem], error)
	FetchNowPlaying(ctx context.Context, page int) (models.PaginatedResult[models.MediaItem], error)
	Search(ctx context.Context, kind, query string, page int) (models.PaginatedResult[models.MediaItem], error)
	FetchDetails(ctx context.Context, kind, id string) (models.MediaDetails, error)
	FetchVideos(ctx context.Context, kind, id string) ([]models.Video, error)
	FetchGenres(ctx context.Context, kind string) ([]models.Genre, error)
}

// NewContainer wires the services around an existing provider client, cache
// and store. db may be nil, in which case genre snapshots are not persisted.
func NewContainer(cfg *config.Config, tmdb TMDBService, c *cache.LRUCache, db database.Database, log logger.Logger) *Container {
	return &Container{
		Config:     cfg,
		TMDB:       tmdb,
		Views:      NewViewAssembler(tmdb, cfg.PopularMoviesSource, log),
		Genres:     NewGenreDirectory(tmdb, c, db, log),
		Images:     images.NewResolver(cfg.ImageBaseURL, cfg.PlaceholderBaseURL),
		Pagination: pagination.New(cfg.PaginationWindow),
		Cache:      c,
		DB:         db,
		Logger:     log,
	}
}
