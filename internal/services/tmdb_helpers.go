package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/amaumene/gocatalog/internal/constants"
	catalogerrors "github.com/amaumene/gocatalog/internal/errors"
	"github.com/amaumene/gocatalog/internal/models"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// get performs one GET against endpoint and decodes the JSON body into out.
// Every failure comes back as an UpstreamError naming the endpoint.
func (t *TMDB) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", t.apiKey)
	if t.language != "" && params.Get("language") == "" {
		params.Set("language", t.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return catalogerrors.NewUpstreamError(endpoint, 0, "failed to build request", stripRequestURL(err))
	}
	req.Header.Set("Accept", "application/json")

	t.logger.Debugf("[TMDB] GET %s page=%s", endpoint, params.Get("page"))

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return catalogerrors.NewUpstreamError(endpoint, 0, "request failed", stripRequestURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := t.readErrorMessage(resp)
		t.logger.Warnf("[TMDB] %s returned %d: %s", endpoint, resp.StatusCode, message)
		return catalogerrors.NewUpstreamError(endpoint, resp.StatusCode, message, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return catalogerrors.NewUpstreamError(endpoint, resp.StatusCode, "failed to decode response", err)
	}
	return nil
}

// stripRequestURL drops the *url.Error wrapper, whose text carries the full
// request URL and with it the api_key query value.
func stripRequestURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// readErrorMessage prefers the provider's status_message, else the HTTP status text.
func (t *TMDB) readErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var apiErr models.TMDBErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.StatusMessage != "" {
			return apiErr.StatusMessage
		}
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}

// fetchList fetches one paginated endpoint and normalizes its entries.
// fallback is the kind assumed for entries that carry no media_type.
func (t *TMDB) fetchList(ctx context.Context, endpoint string, params url.Values, fallback models.MediaKind) (models.PaginatedResult[models.MediaItem], error) {
	var raw models.TMDBListResponse
	if err := t.get(ctx, endpoint, params, &raw); err != nil {
		return models.PaginatedResult[models.MediaItem]{}, err
	}

	items := make([]models.MediaItem, 0, len(raw.Results))
	for _, entry := range raw.Results {
		item, err := decodeMediaItem(entry, fallback)
		if err != nil {
			return models.PaginatedResult[models.MediaItem]{}, catalogerrors.NewUpstreamError(endpoint, http.StatusOK, "failed to decode result", err)
		}
		if item == nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) > constants.ProviderPageSize {
		items = items[:constants.ProviderPageSize]
	}

	result := models.PaginatedResult[models.MediaItem]{
		Page:         raw.Page,
		Results:      items,
		TotalPages:   raw.TotalPages,
		TotalResults: raw.TotalResults,
	}
	normalizePage(&result)
	return result, nil
}

// decodeMediaItem builds the variant matching the entry's media_type.
// Unknown media types are skipped by returning nil.
func decodeMediaItem(entry json.RawMessage, fallback models.MediaKind) (models.MediaItem, error) {
	var tag models.TMDBMediaType
	if err := json.Unmarshal(entry, &tag); err != nil {
		return nil, err
	}
	kind := models.MediaKind(tag.MediaType)
	if kind == "" {
		kind = fallback
	}

	switch kind {
	case models.KindMovie:
		var movie models.TMDBMovie
		if err := json.Unmarshal(entry, &movie); err != nil {
			return nil, err
		}
		return models.NewMovie(movie), nil
	case models.KindTV:
		var tv models.TMDBTV
		if err := json.Unmarshal(entry, &tv); err != nil {
			return nil, err
		}
		return models.NewShow(tv), nil
	case models.KindPerson:
		var person models.TMDBPerson
		if err := json.Unmarshal(entry, &person); err != nil {
			return nil, err
		}
		return models.NewPerson(person), nil
	}
	return nil, nil
}

// normalizePage enforces 1 <= page <= max(total_pages, 1).
func normalizePage[T any](r *models.PaginatedResult[T]) {
	if r.TotalPages < 0 {
		r.TotalPages = 0
	}
	maxPage := r.TotalPages
	if maxPage < 1 {
		maxPage = 1
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Page > maxPage {
		r.Page = maxPage
	}
	if r.Results == nil {
		r.Results = []T{}
	}
}
