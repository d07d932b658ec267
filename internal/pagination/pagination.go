// Package pagination turns (current page, total pages) into the bounded list
// of page markers a navigation bar renders, and builds page links.
//
// Long ranges are compressed with ellipsis markers: page 1 and the last page
// are always shown, plus a window of Window-2 pages around the current page.
// Near either end the window is clamped against the boundary instead of being
// truncated, so the number of visible buttons stays constant.
package pagination

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/amaumene/gocatalog/internal/constants"
)

// Entry is either a concrete page number or an ellipsis marker.
type Entry struct {
	Page     int    `json:"page,omitempty"`
	Ellipsis bool   `json:"ellipsis,omitempty"`
	Current  bool   `json:"current,omitempty"`
	Href     string `json:"href,omitempty"`
}

// Ellipsis is the marker rendered between non-adjacent pages.
var Ellipsis = Entry{Ellipsis: true}

func (e Entry) String() string {
	if e.Ellipsis {
		return "..."
	}
	return strconv.Itoa(e.Page)
}

// MarshalJSON renders ellipsis entries as the string "..." so clients can
// tell them apart without inspecting flags.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Ellipsis {
		return json.Marshal("...")
	}
	type entry Entry
	return json.Marshal(entry(e))
}

// Coordinator computes page sequences for a fixed window size.
type Coordinator struct {
	window int
}

// New returns a Coordinator. Window sizes outside [5, 9] fall back to 7.
func New(window int) *Coordinator {
	if window < constants.MinPaginationWindow || window > constants.MaxPaginationWindow {
		window = constants.DefaultPaginationWindow
	}
	return &Coordinator{window: window}
}

// Window returns the configured window size.
func (c *Coordinator) Window() int {
	return c.window
}

// Sequence returns the page markers for the given position. total <= 0 yields
// an empty sequence. current is clamped into [1, total].
func (c *Coordinator) Sequence(current, total int) []Entry {
	if total <= 0 {
		return []Entry{}
	}
	current = clamp(current, 1, total)

	if total <= c.window {
		entries := make([]Entry, 0, total)
		for p := 1; p <= total; p++ {
			entries = append(entries, Entry{Page: p})
		}
		return entries
	}

	width := c.window - 2
	start := current - width/2
	// Window must fit inside [2, total-1].
	start = clamp(start, 2, total-width)
	end := start + width - 1

	entries := make([]Entry, 0, c.window+2)
	entries = append(entries, Entry{Page: 1})
	if start > 2 {
		entries = append(entries, Ellipsis)
	}
	for p := start; p <= end; p++ {
		entries = append(entries, Entry{Page: p})
	}
	if end < total-1 {
		entries = append(entries, Ellipsis)
	}
	entries = append(entries, Entry{Page: total})
	return entries
}

// GoToPage maps a navigation target to a link. It reports false, meaning
// nothing should happen, when target is outside [1, total]. All query
// parameters other than key are preserved; key is overwritten.
func GoToPage(basePath string, query url.Values, key string, target, total int) (string, bool) {
	if target < 1 || target > total {
		return "", false
	}
	if key == "" {
		key = constants.DefaultPageKey
	}

	params := url.Values{}
	for k, v := range query {
		params[k] = append([]string(nil), v...)
	}
	params.Set(key, strconv.Itoa(target))
	return basePath + "?" + params.Encode(), true
}

// Navigation is the paging block attached to every list response.
type Navigation struct {
	Key     string  `json:"key"`
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Pages   []Entry `json:"pages"`
	Prev    string  `json:"prev,omitempty"`
	Next    string  `json:"next,omitempty"`
}

// Navigate builds the Navigation block for a list served at basePath.
func (c *Coordinator) Navigate(basePath string, query url.Values, key string, current, total int) Navigation {
	if key == "" {
		key = constants.DefaultPageKey
	}
	nav := Navigation{Key: key, Current: current, Total: total}

	entries := c.Sequence(current, total)
	if total > 0 {
		nav.Current = clamp(current, 1, total)
	}
	for i := range entries {
		if entries[i].Ellipsis {
			continue
		}
		entries[i].Current = entries[i].Page == nav.Current
		entries[i].Href, _ = GoToPage(basePath, query, key, entries[i].Page, total)
	}
	nav.Pages = entries

	if href, ok := GoToPage(basePath, query, key, nav.Current-1, total); ok {
		nav.Prev = href
	}
	if href, ok := GoToPage(basePath, query, key, nav.Current+1, total); ok {
		nav.Next = href
	}
	return nav
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
