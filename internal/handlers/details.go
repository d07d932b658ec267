package handlers

import (
	"net/http"
	"strconv"
	"strings"

	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/amaumene/gocatalog/internal/images"
	"github.com/amaumene/gocatalog/internal/models"
	"github.com/amaumene/gocatalog/internal/services"
	"github.com/amaumene/gocatalog/internal/trailer"
	"github.com/gin-gonic/gin"
)

const noTrailerMessage = "No trailer available"

type trailerResponse struct {
	models.Video
	WatchURL string `json:"watch_url"`
	EmbedURL string `json:"embed_url"`
}

type titleResponse struct {
	State          string              `json:"state"`
	Details        models.MediaDetails `json:"details"`
	Poster         images.ImageRef     `json:"poster"`
	Backdrop       images.ImageRef     `json:"backdrop"`
	Trailer        *trailerResponse    `json:"trailer"`
	TrailerState   string              `json:"trailer_state"`
	TrailerMessage string              `json:"trailer_message,omitempty"`
}

// handleDetails is the plain lookup: normalized details, plus the raw
// video list when includeVideos is set.
func (h *Handler) handleDetails(c *gin.Context) {
	kind := c.Query("mediaKind")
	id := c.Query("id")

	includeVideos := false
	if raw := strings.TrimSpace(c.Query("includeVideos")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.respondError(c, "DetailsHandler", catalogerrors.NewValidationError("includeVideos must be a boolean, got %q", raw))
			return
		}
		includeVideos = v
	}

	ctx := c.Request.Context()
	if !includeVideos {
		details, err := h.services.TMDB.FetchDetails(ctx, kind, id)
		if err != nil {
			h.respondError(c, "DetailsHandler", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": stateOK, "details": details})
		return
	}

	view, err := h.services.Views.Details(ctx, kind, id, true)
	if err != nil {
		h.respondError(c, "DetailsHandler", err)
		return
	}

	resp := gin.H{"state": stateOK, "details": view.Details, "videos": view.Videos}
	if view.Partial {
		resp["state"] = statePartial
		resp["videos"] = []models.Video{}
	} else if view.Videos == nil {
		resp["videos"] = []models.Video{}
	}
	c.JSON(http.StatusOK, resp)
}

// handleTitle serves the details view: details, images and the main trailer.
func (h *Handler) handleTitle(c *gin.Context) {
	stripJSONExtension(c, "id")
	kind := c.Param("kind")
	id := c.Param("id")

	view, err := h.services.Views.Details(c.Request.Context(), kind, id, false)
	if err != nil {
		h.respondError(c, "TitleHandler", err)
		return
	}

	c.JSON(http.StatusOK, h.newTitleResponse(view))
}

func (h *Handler) newTitleResponse(view *services.DetailsView) titleResponse {
	base := view.Details.Base()
	title := view.Details.DisplayTitle()

	resp := titleResponse{
		State:        stateOK,
		Details:      view.Details,
		Poster:       h.services.Images.Ref(base.PosterPath, images.SizePosterLarge, title),
		Backdrop:     h.services.Images.Ref(base.BackdropPath, images.SizeBackdropWide, title),
		TrailerState: view.TrailerState,
	}
	if view.Partial {
		resp.State = statePartial
	}

	if view.Trailer != nil {
		watch, embed := trailer.WatchURL(*view.Trailer)
		resp.Trailer = &trailerResponse{Video: *view.Trailer, WatchURL: watch, EmbedURL: embed}
	} else {
		resp.TrailerMessage = noTrailerMessage
	}
	return resp
}
