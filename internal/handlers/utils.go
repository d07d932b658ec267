package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/amaumene/gocatalog/internal/images"
	"github.com/amaumene/gocatalog/internal/models"
	"github.com/amaumene/gocatalog/internal/pagination"
	"github.com/gin-gonic/gin"
)

// Response states shared by every endpoint.
const (
	stateOK      = "ok"
	stateEmpty   = "empty"
	statePartial = "partial"
	stateError   = "error"
	statePrompt  = "prompt"
)

const searchPrompt = "Enter a search term"

// card is the list form of a MediaItem.
type card struct {
	ID          int              `json:"id"`
	MediaType   models.MediaKind `json:"media_type"`
	Title       string           `json:"title"`
	Date        string           `json:"date,omitempty"`
	Department  string           `json:"department,omitempty"`
	Overview    string           `json:"overview,omitempty"`
	VoteAverage float64          `json:"vote_average"`
	VoteCount   int              `json:"vote_count"`
	Poster      images.ImageRef  `json:"poster"`
	Href        string           `json:"href,omitempty"`
}

// listResponse is one paginated list with its navigation block.
type listResponse struct {
	State        string                `json:"state"`
	Message      string                `json:"message,omitempty"`
	Page         int                   `json:"page"`
	TotalPages   int                   `json:"total_pages"`
	TotalResults int                   `json:"total_results"`
	Results      []card                `json:"results"`
	Navigation   pagination.Navigation `json:"navigation"`
}

// stripJSONExtension removes .json extension from a parameter if present
func stripJSONExtension(c *gin.Context, paramName string) {
	value := c.Param(paramName)
	if strings.HasSuffix(value, ".json") {
		for i, param := range c.Params {
			if param.Key == paramName {
				c.Params[i].Value = strings.TrimSuffix(value, ".json")
				break
			}
		}
	}
}

// parsePage reads the page under key. Absent means page 1.
func parsePage(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, catalogerrors.NewValidationError("%s must be an integer, got %q", key, raw)
	}
	if page < 1 {
		return 0, catalogerrors.NewValidationError("%s must be >= 1, got %d", key, page)
	}
	return page, nil
}

func (h *Handler) newCard(item models.MediaItem) card {
	base := item.Base()
	out := card{
		ID:          base.ID,
		MediaType:   item.Kind(),
		Title:       item.DisplayTitle(),
		Date:        item.DisplayDate(),
		Overview:    base.Overview,
		VoteAverage: base.VoteAverage,
		VoteCount:   base.VoteCount,
		Poster:      h.services.Images.Ref(base.PosterPath, images.SizePoster, item.DisplayTitle()),
	}

	switch v := item.(type) {
	case models.Movie, models.Show:
		out.Href = "/api/title/" + string(v.Kind()) + "/" + strconv.Itoa(base.ID)
	case models.Person:
		out.Department = v.KnownForDepartment
	}
	return out
}

// newListResponse shapes a provider page for the client. key is the query
// parameter that selects this list's page.
func (h *Handler) newListResponse(c *gin.Context, key string, result models.PaginatedResult[models.MediaItem]) listResponse {
	cards := make([]card, 0, len(result.Results))
	for _, item := range result.Results {
		cards = append(cards, h.newCard(item))
	}

	state := stateOK
	if len(cards) == 0 {
		state = stateEmpty
	}

	return listResponse{
		State:        state,
		Page:         result.Page,
		TotalPages:   result.TotalPages,
		TotalResults: result.TotalResults,
		Results:      cards,
		Navigation:   h.services.Pagination.Navigate(c.Request.URL.Path, c.Request.URL.Query(), key, result.Page, result.TotalPages),
	}
}

// respondError maps a failure to its status. Nothing is written when the
// client has already gone away.
func (h *Handler) respondError(c *gin.Context, component string, err error) {
	if c.Request.Context().Err() != nil || errors.Is(err, context.Canceled) {
		h.services.Logger.Debugf("[%s] request abandoned by client: %v", component, err)
		c.Abort()
		return
	}

	switch {
	case catalogerrors.IsValidation(err):
		h.services.Logger.Debugf("[%s] rejected request: %v", component, err)
		c.JSON(http.StatusBadRequest, gin.H{
			"state": stateError,
			"type":  catalogerrors.ErrorTypeValidation,
			"error": validationMessage(err),
		})
	case catalogerrors.IsUpstream(err):
		h.services.Logger.Errorf("[%s] upstream failure: %v", component, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"state":   stateError,
			"type":    catalogerrors.ErrorTypeUpstream,
			"error":   "the metadata provider request failed",
			"details": upstreamMessage(err),
		})
	default:
		h.services.Logger.Errorf("[%s] unexpected failure: %v", component, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"state": stateError,
			"error": "internal error",
		})
	}
}

func validationMessage(err error) string {
	var ce *catalogerrors.CatalogError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

func upstreamMessage(err error) string {
	var ce *catalogerrors.CatalogError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return "upstream error"
}
