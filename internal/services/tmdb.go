package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amaumene/gocatalog/internal/config"
	"github.com/amaumene/gocatalog/internal/constants"
	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/amaumene/gocatalog/internal/models"
	"github.com/amaumene/gocatalog/pkg/httputil"
	"github.com/amaumene/gocatalog/pkg/logger"
)

// Trending windows accepted by the provider.
const (
	WindowDay  = "day"
	WindowWeek = "week"
)

// TMDB is the single choke point for calls to the metadata provider. It
// keeps no state between calls: no response cache and no outbound throttling.
type TMDB struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	logger     logger.Logger
}

// NewTMDB creates the metadata client from the startup configuration.
// A nil httpClient gets the default client with the configured timeout.
func NewTMDB(cfg *config.Config, httpClient *http.Client, log logger.Logger) *TMDB {
	if httpClient == nil {
		httpClient = httputil.NewHTTPClient(cfg.HTTPTimeout())
	}
	if log == nil {
		log = logger.New()
	}
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = constants.DefaultAPIBaseURL
	}
	return &TMDB{
		apiKey:     cfg.TMDBAPIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		language:   cfg.Language,
		httpClient: httpClient,
		logger:     log,
	}
}

// FetchTrending returns trending titles. kind is movie, tv, person or all;
// window is day or week (empty means week).
func (t *TMDB) FetchTrending(ctx context.Context, kind, window string, page int) (models.PaginatedResult[models.MediaItem], error) {
	switch kind {
	case "movie", "tv", "person", "all":
	default:
		return models.PaginatedResult[models.MediaItem]{}, catalogerrors.NewValidationError("trending kind %q is not one of movie, tv, person, all", kind)
	}
	if window == "" {
		window = WindowWeek
	}
	if window != WindowDay && window != WindowWeek {
		return models.PaginatedResult[models.MediaItem]{}, catalogerrors.NewValidationError("trending window %q is not one of day, week", window)
	}
	if err := validatePage(page); err != nil {
		return models.PaginatedResult[models.MediaItem]{}, err
	}

	endpoint := fmt.Sprintf("/trending/%s/%s", kind, window)
	return t.fetchList(ctx, endpoint, pageParams(page), models.MediaKind(kind))
}

// FetchPopular returns popular movies or shows.
func (t *TMDB) FetchPopular(ctx context.Context, kind string, page int) (models.PaginatedResult[models.MediaItem], error) {
	mediaKind, err := models.ParseDetailKind(kind)
	if err != nil {
		return models.PaginatedResult[models.MediaItem]{}, catalogerrors.NewValidationError("%v", err)
	}
	if err := validatePage(page); err != nil {
		return models.PaginatedResult[models.MediaItem]{}, err
	}

	return t.fetchList(ctx, "/"+kind+"/popular", pageParams(page), mediaKind)
}

// FetchNowPlaying returns movies currently in theatres.
func (t *TMDB) FetchNowPlaying(ctx context.Context, page int) (models.PaginatedResult[models.MediaItem], error) {
	if err := validatePage(page); err != nil {
		return models.PaginatedResult[models.MediaItem]{}, err
	}
	return t.fetchList(ctx, "/movie/now_playing", pageParams(page), models.KindMovie)
}

// Search runs a title search. kind is movie, tv or multi. A blank query
// returns an empty page without contacting the provider.
func (t *TMDB) Search(ctx context.Context, kind, query string, page int) (models.PaginatedResult[models.MediaItem], error) {
	switch kind {
	case "movie", "tv", "multi":
	default:
		return models.PaginatedResult[models.MediaItem]{}, catalogerrors.NewValidationError("search kind %q is not one of movie, tv, multi", kind)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return models.EmptyPage[models.MediaItem](), nil
	}
	if err := validatePage(page); err != nil {
		return models.PaginatedResult[models.MediaItem]{}, err
	}

	params := pageParams(page)
	params.Set("query", query)
	params.Set("include_adult", "false")

	t.logger.Debugf("[TMDB] searching %s for '%s' page %d", kind, query, page)
	return t.fetchList(ctx, "/search/"+kind, params, models.MediaKind(kind))
}

// FetchDetails returns the details of one movie or show.
func (t *TMDB) FetchDetails(ctx context.Context, kind, id string) (models.MediaDetails, error) {
	mediaKind, tmdbID, err := validateTitleRef(kind, id)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/%s/%d", mediaKind, tmdbID)
	switch mediaKind {
	case models.KindMovie:
		var details models.TMDBMovieDetails
		if err := t.get(ctx, endpoint, nil, &details); err != nil {
			return nil, err
		}
		return models.NewMovieDetails(details), nil
	case models.KindTV:
		var details models.TMDBTVDetails
		if err := t.get(ctx, endpoint, nil, &details); err != nil {
			return nil, err
		}
		return models.NewShowDetails(details), nil
	}
	return nil, catalogerrors.NewValidationError("media kind %q has no details", mediaKind)
}

// FetchVideos returns the videos of a title in provider order.
func (t *TMDB) FetchVideos(ctx context.Context, kind, id string) ([]models.Video, error) {
	mediaKind, tmdbID, err := validateTitleRef(kind, id)
	if err != nil {
		return nil, err
	}

	var resp models.TMDBVideosResponse
	if err := t.get(ctx, fmt.Sprintf("/%s/%d/videos", mediaKind, tmdbID), nil, &resp); err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(resp.Results))
	for _, v := range resp.Results {
		videos = append(videos, models.NewVideo(v))
	}
	return videos, nil
}

// FetchGenres returns the provider's genre list for movies or shows.
func (t *TMDB) FetchGenres(ctx context.Context, kind string) ([]models.Genre, error) {
	if _, err := models.ParseDetailKind(kind); err != nil {
		return nil, catalogerrors.NewValidationError("%v", err)
	}

	var resp models.TMDBGenreResponse
	if err := t.get(ctx, "/genre/"+kind+"/list", nil, &resp); err != nil {
		return nil, err
	}
	return models.ConvertGenres(resp.Genres), nil
}

func validatePage(page int) error {
	if page < 1 {
		return catalogerrors.NewValidationError("page must be >= 1, got %d", page)
	}
	if page > constants.ProviderMaxPage {
		return catalogerrors.NewValidationError("page must be <= %d, got %d", constants.ProviderMaxPage, page)
	}
	return nil
}

func validateTitleRef(kind, id string) (models.MediaKind, int, error) {
	mediaKind, err := models.ParseDetailKind(kind)
	if err != nil {
		return "", 0, catalogerrors.NewValidationError("%v", err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", 0, catalogerrors.NewValidationError("id is required")
	}
	tmdbID, err := strconv.Atoi(id)
	if err != nil || tmdbID <= 0 {
		return "", 0, catalogerrors.NewValidationError("id %q is not a positive integer", id)
	}
	return mediaKind, tmdbID, nil
}

func pageParams(page int) url.Values {
	return url.Values{"page": {strconv.Itoa(page)}}
}
