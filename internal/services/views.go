package services

import (
	"context"
	"sync"

	"github.com/amaumene/gocatalog/internal/constants"
	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/amaumene/gocatalog/internal/models"
	"github.com/amaumene/gocatalog/internal/trailer"
	"github.com/amaumene/gocatalog/pkg/logger"
)

// Section states returned with every list in a view.
const (
	StateOK    = "ok"
	StateEmpty = "empty"
	StateError = "error"
)

// Trailer states of a details view.
const (
	TrailerAvailable   = "available"
	TrailerNone        = "none"
	TrailerUnavailable = "unavailable"
)

// Section is one independently paginated list of a view.
type Section struct {
	State   string                                   `json:"state"`
	Result  models.PaginatedResult[models.MediaItem] `json:"result"`
	Message string                                   `json:"message,omitempty"`
	Err     error                                    `json:"-"`
}

// HomePages selects the page of each home section.
type HomePages struct {
	Movies     int
	Shows      int
	NowPlaying int
}

type HomeView struct {
	TrendingMovies Section `json:"trending_movies"`
	TrendingShows  Section `json:"trending_shows"`
	NowPlaying     Section `json:"now_playing"`
}

// DetailsView is a title's details plus its resolved trailer. Videos is
// only filled when requested.
type DetailsView struct {
	Details      models.MediaDetails `json:"details"`
	Trailer      *models.Video       `json:"trailer"`
	TrailerState string              `json:"trailer_state"`
	Videos       []models.Video      `json:"videos,omitempty"`
	Partial      bool                `json:"partial"`
}

// ViewAssembler issues every fetch of a view concurrently and joins them.
type ViewAssembler struct {
	tmdb          TMDBService
	popularSource string
	logger        logger.Logger
}

func NewViewAssembler(tmdb TMDBService, popularSource string, log logger.Logger) *ViewAssembler {
	if popularSource == "" {
		popularSource = constants.PopularSourcePopular
	}
	return &ViewAssembler{tmdb: tmdb, popularSource: popularSource, logger: log}
}

// Home fetches trending movies, trending shows and now playing in parallel.
// A failed section is reported in its own state and does not affect the
// others. If ctx ends before all fetches return, the view is discarded.
func (v *ViewAssembler) Home(ctx context.Context, pages HomePages) (*HomeView, error) {
	var view HomeView
	var wg sync.WaitGroup

	fetch := func(dst *Section, name string, call func() (models.PaginatedResult[models.MediaItem], error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := call()
			*dst = newSection(result, err)
			if err != nil && ctx.Err() == nil {
				v.logger.Warnf("[Views] home section %s failed: %v", name, err)
			}
		}()
	}

	fetch(&view.TrendingMovies, "trending_movies", func() (models.PaginatedResult[models.MediaItem], error) {
		return v.tmdb.FetchTrending(ctx, "movie", WindowWeek, pageOrFirst(pages.Movies))
	})
	fetch(&view.TrendingShows, "trending_shows", func() (models.PaginatedResult[models.MediaItem], error) {
		return v.tmdb.FetchTrending(ctx, "tv", WindowWeek, pageOrFirst(pages.Shows))
	})
	fetch(&view.NowPlaying, "now_playing", func() (models.PaginatedResult[models.MediaItem], error) {
		return v.tmdb.FetchNowPlaying(ctx, pageOrFirst(pages.NowPlaying))
	})

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &view, nil
}

// PopularMovies serves the popular movie list from the configured source.
func (v *ViewAssembler) PopularMovies(ctx context.Context, page int) (models.PaginatedResult[models.MediaItem], error) {
	if v.popularSource == constants.PopularSourceNowPlaying {
		return v.tmdb.FetchNowPlaying(ctx, page)
	}
	return v.tmdb.FetchPopular(ctx, "movie", page)
}

// Details fetches a title's details and videos in parallel. A videos failure
// degrades the view to "no trailer"; a details failure fails the view.
func (v *ViewAssembler) Details(ctx context.Context, kind, id string, includeVideos bool) (*DetailsView, error) {
	if _, _, err := validateTitleRef(kind, id); err != nil {
		return nil, err
	}

	var (
		wg         sync.WaitGroup
		details    models.MediaDetails
		detailsErr error
		videos     []models.Video
		videosErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		details, detailsErr = v.tmdb.FetchDetails(ctx, kind, id)
	}()
	go func() {
		defer wg.Done()
		videos, videosErr = v.tmdb.FetchVideos(ctx, kind, id)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if detailsErr != nil {
		return nil, detailsErr
	}

	view := &DetailsView{Details: details, TrailerState: TrailerNone}
	if videosErr != nil {
		partial := catalogerrors.NewPartialFailure("trailer", videosErr)
		v.logger.Warnf("[Views] %s %s: %v", kind, id, partial)
		view.Partial = true
		view.TrailerState = TrailerUnavailable
		return view, nil
	}

	if main, ok := trailer.Resolve(videos); ok {
		view.Trailer = &main
		view.TrailerState = TrailerAvailable
	}
	if includeVideos {
		view.Videos = videos
	}
	return view, nil
}

func newSection(result models.PaginatedResult[models.MediaItem], err error) Section {
	if err != nil {
		return Section{
			State:   StateError,
			Result:  models.EmptyPage[models.MediaItem](),
			Message: err.Error(),
			Err:     err,
		}
	}
	if len(result.Results) == 0 {
		return Section{State: StateEmpty, Result: result}
	}
	return Section{State: StateOK, Result: result}
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
