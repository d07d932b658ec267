package handlers

import (
	"net/http"

	"github.com/amaumene/gocatalog/internal/constants"
	"github.com/gin-gonic/gin"
)

// Manifest describes the service and the catalog sections it offers.
type Manifest struct {
	ID          string    `json:"id"`
	Version     string    `json:"version"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Types       []string  `json:"types"`
	Sections    []Section `json:"sections"`
	Paging      Paging    `json:"paging"`
}

// Section is one browsable list.
type Section struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind"`
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	PageKey string   `json:"page_key"`
	Extra   []string `json:"extra,omitempty"`
}

type Paging struct {
	Window   int `json:"window"`
	PageSize int `json:"page_size"`
	MaxPage  int `json:"max_page"`
}

func (h *Handler) handleManifest(c *gin.Context) {
	c.JSON(http.StatusOK, h.createManifest())
}

func (h *Handler) createManifest() Manifest {
	return Manifest{
		ID:          constants.ServiceID,
		Version:     constants.ServiceVersion,
		Name:        constants.ServiceName,
		Description: constants.ServiceDescription,
		Types:       []string{"movie", "tv"},
		Sections:    h.getDefaultSections(),
		Paging: Paging{
			Window:   h.services.Pagination.Window(),
			PageSize: constants.ProviderPageSize,
			MaxPage:  constants.ProviderMaxPage,
		},
	}
}

func (h *Handler) getDefaultSections() []Section {
	var sections []Section
	sections = append(sections, h.getMovieSections()...)
	sections = append(sections, h.getTVSections()...)
	return sections
}

func (h *Handler) getMovieSections() []Section {
	popularName := "Popular movies"
	if h.config != nil && h.config.PopularMoviesSource == constants.PopularSourceNowPlaying {
		popularName = "Popular movies (in theatres)"
	}

	return []Section{
		{ID: "trending", Kind: "movie", Name: "Trending movies", Path: "/api/trending/movie", PageKey: constants.DefaultPageKey, Extra: []string{"window"}},
		{ID: "popular", Kind: "movie", Name: popularName, Path: "/api/popular/movie", PageKey: constants.DefaultPageKey},
		{ID: "now_playing", Kind: "movie", Name: "Now playing", Path: "/api/now-playing", PageKey: constants.DefaultPageKey},
		{ID: "search", Kind: "movie", Name: "Search movies", Path: "/api/search/movie", PageKey: constants.DefaultPageKey, Extra: []string{"query"}},
	}
}

func (h *Handler) getTVSections() []Section {
	return []Section{
		{ID: "trending", Kind: "tv", Name: "Trending TV shows", Path: "/api/trending/tv", PageKey: constants.DefaultPageKey, Extra: []string{"window"}},
		{ID: "popular", Kind: "tv", Name: "Popular TV shows", Path: "/api/popular/tv", PageKey: constants.DefaultPageKey},
		{ID: "search", Kind: "tv", Name: "Search TV shows", Path: "/api/search/tv", PageKey: constants.DefaultPageKey, Extra: []string{"query"}},
	}
}
