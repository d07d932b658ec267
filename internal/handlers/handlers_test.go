package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amaumene/gocatalog/internal/cache"
	"github.com/amaumene/gocatalog/internal/config"
	"github.com/amaumene/gocatalog/internal/services"
	"github.com/amaumene/gocatalog/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// provider is a fake metadata API keyed by request path.
type provider struct {
	server *httptest.Server
	calls  atomic.Int32

	mu     sync.Mutex
	routes map[string]route
}

type route struct {
	status int
	body   string
}

func newProvider(t *testing.T) *provider {
	t.Helper()
	p := &provider{routes: map[string]route{}}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.calls.Add(1)
		p.mu.Lock()
		rt, ok := p.routes[r.URL.Path]
		p.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status_code":34,"status_message":"The resource you requested could not be found."}`)
			return
		}
		w.WriteHeader(rt.status)
		fmt.Fprint(w, rt.body)
	}))
	t.Cleanup(p.server.Close)
	return p
}

func (p *provider) on(path string, status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routes[path] = route{status: status, body: body}
}

func setupTestRouter(t *testing.T, p *provider, mutate ...func(*config.Config)) *gin.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.TMDBAPIKey = "0123456789abcdef0123456789abcdef"
	cfg.APIBaseURL = p.server.URL
	for _, m := range mutate {
		m(cfg)
	}

	log := logger.Discard()
	tmdb := services.NewTMDB(cfg, p.server.Client(), log)
	container := services.NewContainer(cfg, tmdb, cache.New(100, time.Hour), nil, log)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(container, cfg).RegisterRoutes(r)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func listJSON(page, totalPages int, results ...string) string {
	return fmt.Sprintf(`{"page":%d,"total_pages":%d,"total_results":%d,"results":[%s]}`,
		page, totalPages, totalPages*20, strings.Join(results, ","))
}

const dune = `{"id":438631,"title":"Dune","release_date":"2021-09-15","poster_path":"/d5NXSklXo0qyIYkgV94XAgMIckC.jpg","backdrop_path":null,"vote_average":7.8,"vote_count":9000}`

func TestSearchWithoutQueryPrompts(t *testing.T) {
	p := newProvider(t)
	r := setupTestRouter(t, p)

	for _, target := range []string{"/api/search/movie", "/api/search/tv?query=", "/api/search/multi?query=%20%20"} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "prompt", body["state"])
		assert.Equal(t, "Enter a search term", body["message"])
	}
	assert.Equal(t, int32(0), p.calls.Load())
}

func TestSearchResults(t *testing.T) {
	p := newProvider(t)
	p.on("/search/movie", 200, listJSON(1, 1, dune))
	r := setupTestRouter(t, p)

	w := serve(r, http.MethodGet, "/api/search/movie?query=dune", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["state"])
	results := body["results"].([]interface{})
	require.Len(t, results, 1)
	first := results[0].(map[string]interface{})
	assert.Equal(t, "Dune", first["title"])
	assert.Equal(t, "/api/title/movie/438631", first["href"])
	poster := first["poster"].(map[string]interface{})
	assert.Equal(t, "https://image.tmdb.org/t/p/w342/d5NXSklXo0qyIYkgV94XAgMIckC.jpg", poster["url"])
	assert.Equal(t, "Image not available", poster["fallback_alt"])

	p.on("/search/movie", 200, listJSON(1, 0))
	body = decode(t, serve(r, http.MethodGet, "/api/search/movie?query=zzzz", ""))
	assert.Equal(t, "empty", body["state"])
}

func TestDetailsValidation(t *testing.T) {
	p := newProvider(t)
	r := setupTestRouter(t, p)

	for _, target := range []string{
		"/api/details?mediaKind=bogus&id=550",
		"/api/details?id=550",
		"/api/details?mediaKind=movie",
		"/api/details?mediaKind=movie&id=abc",
		"/api/details?mediaKind=movie&id=550&includeVideos=maybe",
	} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "VALIDATION", decode(t, w)["type"], target)
	}
	assert.Equal(t, int32(0), p.calls.Load())
}

func TestDetailsUpstreamFailure(t *testing.T) {
	p := newProvider(t)
	p.on("/movie/550", 401, `{"status_code":7,"status_message":"Invalid API key"}`)
	r := setupTestRouter(t, p)

	w := serve(r, http.MethodGet, "/api/details?mediaKind=movie&id=550", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "UPSTREAM", body["type"])
	assert.Equal(t, "Invalid API key", body["details"])
}

func TestDetailsWithVideos(t *testing.T) {
	p := newProvider(t)
	p.on("/tv/1399", 200, `{"id":1399,"name":"Game of Thrones","number_of_seasons":8}`)
	p.on("/tv/1399/videos", 200, `{"results":[{"site":"YouTube","type":"Trailer","official":true,"key":"bjqEWgDVPe0"}]}`)
	r := setupTestRouter(t, p)

	body := decode(t, serve(r, http.MethodGet, "/api/details?mediaKind=tv&id=1399&includeVideos=true", ""))
	assert.Equal(t, "ok", body["state"])
	details := body["details"].(map[string]interface{})
	assert.Equal(t, "Game of Thrones", details["name"])
	assert.Equal(t, "tv", details["media_type"])
	assert.Len(t, body["videos"], 1)

	body = decode(t, serve(r, http.MethodGet, "/api/details?mediaKind=tv&id=1399", ""))
	_, hasVideos := body["videos"]
	assert.False(t, hasVideos)
}

func TestTitleDegradesWhenVideosFail(t *testing.T) {
	p := newProvider(t)
	p.on("/movie/438631", 200, dune)
	p.on("/movie/438631/videos", 500, `{"status_message":"Internal error"}`)
	r := setupTestRouter(t, p)

	w := serve(r, http.MethodGet, "/api/title/movie/438631.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "partial", body["state"])
	assert.Nil(t, body["trailer"])
	assert.Equal(t, "unavailable", body["trailer_state"])
	assert.Equal(t, "No trailer available", body["trailer_message"])

	backdrop := body["backdrop"].(map[string]interface{})
	assert.Equal(t, true, backdrop["placeholder"])
	assert.Equal(t, "https://placehold.co/1280x720?text=No+Image", backdrop["url"])
}

func TestTitleWithTrailer(t *testing.T) {
	p := newProvider(t)
	p.on("/movie/438631", 200, dune)
	p.on("/movie/438631/videos", 200, `{"results":[
		{"site":"YouTube","type":"Teaser","key":"teaser"},
		{"site":"YouTube","type":"Trailer","official":false,"key":"fan"},
		{"site":"YouTube","type":"Trailer","official":true,"key":"n9xhJrPXop4"}]}`)
	r := setupTestRouter(t, p)

	body := decode(t, serve(r, http.MethodGet, "/api/title/movie/438631", ""))
	assert.Equal(t, "ok", body["state"])
	trailer := body["trailer"].(map[string]interface{})
	assert.Equal(t, "n9xhJrPXop4", trailer["key"])
	assert.Equal(t, "https://www.youtube.com/embed/n9xhJrPXop4", trailer["embed_url"])
}

func TestTrendingNavigation(t *testing.T) {
	p := newProvider(t)
	p.on("/trending/movie/week", 200, listJSON(8, 20, dune))
	r := setupTestRouter(t, p)

	w := serve(r, http.MethodGet, "/api/trending/movie?page=8&window=week", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	nav := body["navigation"].(map[string]interface{})

	var labels []string
	for _, e := range nav["pages"].([]interface{}) {
		switch v := e.(type) {
		case string:
			labels = append(labels, v)
		case map[string]interface{}:
			labels = append(labels, fmt.Sprint(v["page"]))
		}
	}
	assert.Equal(t, []string{"1", "...", "6", "7", "8", "9", "10", "...", "20"}, labels)
	assert.Equal(t, "/api/trending/movie?page=9&window=week", nav["next"])
	assert.Equal(t, "/api/trending/movie?page=7&window=week", nav["prev"])
}

func TestPageParameterValidation(t *testing.T) {
	p := newProvider(t)
	r := setupTestRouter(t, p)

	for _, target := range []string{
		"/api/trending/movie?page=abc",
		"/api/trending/movie?page=0",
		"/api/popular/tv?page=501",
		"/api/now-playing?page=-3",
		"/api/trending/collection",
		"/api/home?tvPage=x",
	} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
	assert.Equal(t, int32(0), p.calls.Load())
}

func TestPopularMoviesUsesConfiguredSource(t *testing.T) {
	p := newProvider(t)
	p.on("/movie/now_playing", 200, listJSON(1, 1, dune))
	r := setupTestRouter(t, p, func(cfg *config.Config) { cfg.PopularMoviesSource = "now_playing" })

	w := serve(r, http.MethodGet, "/api/popular/movie", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["state"])
}

func TestHomeSectionsUseDistinctKeys(t *testing.T) {
	p := newProvider(t)
	p.on("/trending/movie/week", 200, listJSON(2, 5, dune))
	p.on("/trending/tv/week", 503, `oops`)
	p.on("/movie/now_playing", 200, listJSON(1, 3, dune))
	r := setupTestRouter(t, p)

	w := serve(r, http.MethodGet, "/api/home?moviePage=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	movies := body["trending_movies"].(map[string]interface{})
	assert.Equal(t, "ok", movies["state"])
	assert.Equal(t, "moviePage", movies["key"])
	nav := movies["navigation"].(map[string]interface{})
	assert.Equal(t, "/api/home?moviePage=3", nav["next"])
	assert.Len(t, nav["pages"], 5)

	shows := body["trending_shows"].(map[string]interface{})
	assert.Equal(t, "error", shows["state"])

	now := body["now_playing"].(map[string]interface{})
	assert.Equal(t, "nowPage", now["key"])
	nowNav := now["navigation"].(map[string]interface{})
	assert.Equal(t, "/api/home?moviePage=2&nowPage=2", nowNav["next"])
}

func TestGenres(t *testing.T) {
	p := newProvider(t)
	p.on("/genre/movie/list", 200, `{"genres":[{"id":28,"name":"Action"}]}`)
	r := setupTestRouter(t, p)

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodGet, "/api/genres/movie", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["genres"], 1)
	}
	assert.Equal(t, int32(1), p.calls.Load())

	w := serve(r, http.MethodGet, "/api/genres/person", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNav(t *testing.T) {
	r := setupTestRouter(t, newProvider(t))

	body := decode(t, serve(r, http.MethodPost, "/api/nav", `{"event":"toggle-menu"}`))
	assert.Equal(t, "menu-open", body["state"])
	assert.Equal(t, true, body["menu_visible"])
	assert.Equal(t, false, body["search_visible"])

	body = decode(t, serve(r, http.MethodPost, "/api/nav", `{"state":"menu-open","event":"toggle-search"}`))
	assert.Equal(t, "search-open", body["state"])
	assert.Equal(t, false, body["menu_visible"])

	w := serve(r, http.MethodPost, "/api/nav", `{"state":"menu-open","event":"fly"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodPost, "/api/nav", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestManifestAndHealth(t *testing.T) {
	r := setupTestRouter(t, newProvider(t))

	body := decode(t, serve(r, http.MethodGet, "/api/manifest", ""))
	assert.Equal(t, "GoCatalog", body["name"])
	assert.Len(t, body["sections"], 7)
	paging := body["paging"].(map[string]interface{})
	assert.Equal(t, float64(7), paging["window"])

	w := serve(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
