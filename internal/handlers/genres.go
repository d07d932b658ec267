package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) handleGenres(c *gin.Context) {
	stripJSONExtension(c, "kind")
	kind := c.Param("kind")

	genres, err := h.services.Genres.Genres(c.Request.Context(), kind)
	if err != nil {
		h.respondError(c, "GenresHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": stateOK, "kind": kind, "genres": genres})
}
