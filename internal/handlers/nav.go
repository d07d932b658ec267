package handlers

import (
	"net/http"

	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/amaumene/gocatalog/internal/navstate"
	"github.com/gin-gonic/gin"
)

type navRequest struct {
	State navstate.State `json:"state"`
	Event navstate.Event `json:"event"`
}

// handleNav applies one event to the navigation state the client holds.
func (h *Handler) handleNav(c *gin.Context) {
	var req navRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, "NavHandler", catalogerrors.NewValidationError("invalid navigation request: %v", err))
		return
	}
	if req.State == "" {
		req.State = navstate.Idle
	}

	next, err := navstate.Transition(req.State, req.Event)
	if err != nil {
		h.respondError(c, "NavHandler", catalogerrors.NewValidationError("%v", err))
		return
	}

	c.JSON(http.StatusOK, next.View())
}
