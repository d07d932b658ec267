// Package handlers implements the HTTP API of the catalog.
package handlers

import (
	"net/http"

	"github.com/amaumene/gocatalog/internal/config"
	"github.com/amaumene/gocatalog/internal/services"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the catalog API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes for the catalog API.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)
	r.GET("/healthz", h.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/manifest", h.handleManifest)
		api.GET("/home", h.handleHomeView)

		// Lists
		api.GET("/trending/:kind", h.handleTrending)
		api.GET("/popular/:kind", h.handlePopular)
		api.GET("/now-playing", h.handleNowPlaying)
		api.GET("/search/:kind", h.handleSearch)
		api.GET("/genres/:kind", h.handleGenres)

		// Titles
		api.GET("/details", h.handleDetails)
		api.GET("/title/:kind/:id", h.handleTitle)

		api.POST("/nav", h.handleNav)
	}
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to GoCatalog! Visit /api/manifest for the available sections.")
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
