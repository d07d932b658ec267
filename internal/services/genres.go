package services

import (
	"context"
	"time"

	"github.com/amaumene/gocatalog/internal/cache"
	"github.com/amaumene/gocatalog/internal/constants"
	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/amaumene/gocatalog/internal/models"
	"github.com/amaumene/gocatalog/pkg/logger"
)

var genreKinds = []models.MediaKind{models.KindMovie, models.KindTV}

// GenreDirectory serves the provider's genre lists. Lists are reference
// data: they are held in the LRU cache, snapshotted to the store and
// refreshed on a schedule, and the last snapshot is served when the
// provider is unreachable. Only genre lists go through this cache; list
// and detail responses always come straight from TMDB.
type GenreDirectory struct {
	tmdb   TMDBService
	cache  *cache.LRUCache
	db     genreStore
	logger logger.Logger
	now    func() time.Time
}

// genreStore is the part of database.Database the directory uses.
type genreStore interface {
	GetGenreSnapshot(kind models.MediaKind) (*models.GenreSnapshot, error)
	StoreGenreSnapshot(snapshot *models.GenreSnapshot) error
	ListGenreSnapshots() ([]models.GenreSnapshot, error)
}

func NewGenreDirectory(tmdb TMDBService, c *cache.LRUCache, db genreStore, log logger.Logger) *GenreDirectory {
	return &GenreDirectory{tmdb: tmdb, cache: c, db: db, logger: log, now: time.Now}
}

// Genres returns the genre list for movie or tv.
func (g *GenreDirectory) Genres(ctx context.Context, kind string) ([]models.Genre, error) {
	mediaKind, err := models.ParseDetailKind(kind)
	if err != nil {
		return nil, catalogerrors.NewValidationError("%v", err)
	}

	if g.cache != nil {
		if cached, ok := g.cache.Get(genreCacheKey(mediaKind)); ok {
			if genres, ok := cached.([]models.Genre); ok {
				return genres, nil
			}
		}
	}

	genres, err := g.fetch(ctx, mediaKind)
	if err == nil {
		return genres, nil
	}
	if catalogerrors.IsValidation(err) || ctx.Err() != nil {
		return nil, err
	}

	snapshot := g.loadSnapshot(mediaKind)
	if snapshot == nil {
		return nil, err
	}
	g.logger.Warnf("[Genres] provider failed for %s, serving snapshot from %s: %v",
		mediaKind, snapshot.FetchedAt.Format(time.RFC3339), err)
	return snapshot.Genres, nil
}

// Refresh refetches every genre list and replaces cache and snapshots.
// It returns the first error but still attempts every kind.
func (g *GenreDirectory) Refresh(ctx context.Context) error {
	var firstErr error
	for _, kind := range genreKinds {
		if _, err := g.fetch(ctx, kind); err != nil {
			g.logger.Errorf("[Genres] refresh of %s failed: %v", kind, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Warm loads stored snapshots younger than maxAge into the cache and fetches
// the kinds that have none.
func (g *GenreDirectory) Warm(ctx context.Context, maxAge time.Duration) {
	if maxAge <= 0 {
		maxAge = constants.GenreSnapshotMaxAge
	}
	stored := g.loadSnapshots()
	for _, kind := range genreKinds {
		snapshot, ok := stored[kind]
		if ok && g.now().Sub(snapshot.FetchedAt) < maxAge {
			g.store(kind, snapshot.Genres)
			g.logger.Debugf("[Genres] warmed %s from snapshot (%d genres)", kind, len(snapshot.Genres))
			continue
		}
		if _, err := g.fetch(ctx, kind); err != nil {
			g.logger.Warnf("[Genres] warmup fetch of %s failed: %v", kind, err)
		}
	}
}

func (g *GenreDirectory) fetch(ctx context.Context, kind models.MediaKind) ([]models.Genre, error) {
	genres, err := g.tmdb.FetchGenres(ctx, string(kind))
	if err != nil {
		return nil, err
	}

	g.store(kind, genres)
	if g.db != nil {
		snapshot := &models.GenreSnapshot{Kind: kind, Genres: genres, FetchedAt: g.now()}
		if err := g.db.StoreGenreSnapshot(snapshot); err != nil {
			g.logger.Warnf("[Genres] failed to persist %s snapshot: %v", kind, err)
		}
	}
	return genres, nil
}

func (g *GenreDirectory) store(kind models.MediaKind, genres []models.Genre) {
	if g.cache != nil {
		g.cache.Set(genreCacheKey(kind), genres)
	}
}

func (g *GenreDirectory) loadSnapshot(kind models.MediaKind) *models.GenreSnapshot {
	if g.db == nil {
		return nil
	}
	snapshot, err := g.db.GetGenreSnapshot(kind)
	if err != nil {
		g.logger.Warnf("[Genres] failed to read %s snapshot: %v", kind, err)
		return nil
	}
	return snapshot
}

// loadSnapshots reads every stored snapshot keyed by kind.
func (g *GenreDirectory) loadSnapshots() map[models.MediaKind]models.GenreSnapshot {
	out := make(map[models.MediaKind]models.GenreSnapshot)
	if g.db == nil {
		return out
	}
	snapshots, err := g.db.ListGenreSnapshots()
	if err != nil {
		g.logger.Warnf("[Genres] failed to list snapshots: %v", err)
		return out
	}
	for _, snapshot := range snapshots {
		out[snapshot.Kind] = snapshot
	}
	return out
}

func genreCacheKey(kind models.MediaKind) string {
	return "genres:" + string(kind)
}
