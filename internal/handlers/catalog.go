package handlers

import (
	"net/http"
	"strings"

	"github.com/amaumene/gocatalog/internal/constants"
	"github.com/amaumene/gocatalog/internal/models"
	"github.com/amaumene/gocatalog/internal/services"
	"github.com/gin-gonic/gin"
)

// Page keys of the home view, one per independently paginated section.
const (
	homeMoviePageKey = "moviePage"
	homeTVPageKey    = "tvPage"
	homeNowPageKey   = "nowPage"
)

type sectionResponse struct {
	listResponse
	Key string `json:"key"`
}

type homeResponse struct {
	TrendingMovies sectionResponse `json:"trending_movies"`
	TrendingShows  sectionResponse `json:"trending_shows"`
	NowPlaying     sectionResponse `json:"now_playing"`
}

func (h *Handler) handleHomeView(c *gin.Context) {
	var pages services.HomePages
	var err error
	if pages.Movies, err = parsePage(c, homeMoviePageKey); err != nil {
		h.respondError(c, "HomeHandler", err)
		return
	}
	if pages.Shows, err = parsePage(c, homeTVPageKey); err != nil {
		h.respondError(c, "HomeHandler", err)
		return
	}
	if pages.NowPlaying, err = parsePage(c, homeNowPageKey); err != nil {
		h.respondError(c, "HomeHandler", err)
		return
	}

	view, err := h.services.Views.Home(c.Request.Context(), pages)
	if err != nil {
		h.respondError(c, "HomeHandler", err)
		return
	}

	c.JSON(http.StatusOK, homeResponse{
		TrendingMovies: h.newSectionResponse(c, homeMoviePageKey, view.TrendingMovies),
		TrendingShows:  h.newSectionResponse(c, homeTVPageKey, view.TrendingShows),
		NowPlaying:     h.newSectionResponse(c, homeNowPageKey, view.NowPlaying),
	})
}

func (h *Handler) newSectionResponse(c *gin.Context, key string, section services.Section) sectionResponse {
	resp := sectionResponse{listResponse: h.newListResponse(c, key, section.Result), Key: key}
	if section.State == services.StateError {
		resp.State = stateError
		resp.Message = "This section is temporarily unavailable"
	}
	return resp
}

func (h *Handler) handleTrending(c *gin.Context) {
	stripJSONExtension(c, "kind")
	kind := c.Param("kind")
	page, err := parsePage(c, constants.DefaultPageKey)
	if err != nil {
		h.respondError(c, "CatalogHandler", err)
		return
	}

	h.services.Logger.Debugf("[CatalogHandler] trending %s page %d", kind, page)
	result, err := h.services.TMDB.FetchTrending(c.Request.Context(), kind, c.Query("window"), page)
	if err != nil {
		h.respondError(c, "CatalogHandler", err)
		return
	}
	c.JSON(http.StatusOK, h.newListResponse(c, constants.DefaultPageKey, result))
}

func (h *Handler) handlePopular(c *gin.Context) {
	stripJSONExtension(c, "kind")
	kind := c.Param("kind")
	page, err := parsePage(c, constants.DefaultPageKey)
	if err != nil {
		h.respondError(c, "CatalogHandler", err)
		return
	}

	ctx := c.Request.Context()
	h.services.Logger.Debugf("[CatalogHandler] popular %s page %d", kind, page)

	var result models.PaginatedResult[models.MediaItem]
	if kind == "movie" {
		result, err = h.services.Views.PopularMovies(ctx, page)
	} else {
		result, err = h.services.TMDB.FetchPopular(ctx, kind, page)
	}
	if err != nil {
		h.respondError(c, "CatalogHandler", err)
		return
	}
	c.JSON(http.StatusOK, h.newListResponse(c, constants.DefaultPageKey, result))
}

func (h *Handler) handleNowPlaying(c *gin.Context) {
	page, err := parsePage(c, constants.DefaultPageKey)
	if err != nil {
		h.respondError(c, "CatalogHandler", err)
		return
	}

	result, err := h.services.TMDB.FetchNowPlaying(c.Request.Context(), page)
	if err != nil {
		h.respondError(c, "CatalogHandler", err)
		return
	}
	c.JSON(http.StatusOK, h.newListResponse(c, constants.DefaultPageKey, result))
}

// handleSearch answers an empty query with a prompt, never an error.
func (h *Handler) handleSearch(c *gin.Context) {
	stripJSONExtension(c, "kind")
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"state": statePrompt, "message": searchPrompt})
		return
	}

	page, err := parsePage(c, constants.DefaultPageKey)
	if err != nil {
		h.respondError(c, "SearchHandler", err)
		return
	}

	kind := c.Param("kind")
	h.services.Logger.Infof("[SearchHandler] searching %s for '%s' page %d", kind, query, page)
	result, err := h.services.TMDB.Search(c.Request.Context(), kind, query, page)
	if err != nil {
		h.respondError(c, "SearchHandler", err)
		return
	}

	resp := h.newListResponse(c, constants.DefaultPageKey, result)
	if resp.State == stateEmpty {
		resp.Message = "No results for '" + query + "'"
	}
	c.JSON(http.StatusOK, resp)
}
