// Package images resolves provider image paths into URLs, substituting a
// sized placeholder when a title has no image.
package images

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amaumene/gocatalog/internal/constants"
)

// FallbackAlt is the accessible text shown when an image cannot be displayed.
const FallbackAlt = "Image not available"

const (
	SizePosterSmall  = "w185"
	SizePoster       = "w342"
	SizePosterLarge  = "w500"
	SizeBackdrop     = "w780"
	SizeBackdropWide = "w1280"
	SizeOriginal     = "original"
)

// backdrop-only tokens use 16:9, every other token 2:3.
var backdropTokens = map[string]bool{
	"w300":  true,
	"w780":  true,
	"w1280": true,
}

// ImageRef carries everything a client needs to render an image and to
// swap in the placeholder if loading fails at render time.
type ImageRef struct {
	URL         string `json:"url"`
	Alt         string `json:"alt"`
	FallbackURL string `json:"fallback_url"`
	FallbackAlt string `json:"fallback_alt"`
	Placeholder bool   `json:"placeholder"`
}

// Resolver builds image URLs against a fixed image base.
type Resolver struct {
	imageBase       string
	placeholderBase string
}

// NewResolver returns a Resolver. Empty bases fall back to the TMDB image CDN
// and the public placeholder service.
func NewResolver(imageBase, placeholderBase string) *Resolver {
	if imageBase == "" {
		imageBase = constants.DefaultImageBaseURL
	}
	if placeholderBase == "" {
		placeholderBase = constants.DefaultPlaceholderBaseURL
	}
	return &Resolver{
		imageBase:       ensureSlash(imageBase),
		placeholderBase: ensureSlash(placeholderBase),
	}
}

// Resolve maps (path, size) to a URL. A nil or empty path yields the
// placeholder sized from the token.
func (r *Resolver) Resolve(path *string, size string) string {
	w, h := Dimensions(size)
	return r.ResolveSized(path, size, w, h)
}

// ResolveSized is Resolve with explicit placeholder dimensions.
func (r *Resolver) ResolveSized(path *string, size string, width, height int) string {
	if path == nil || *path == "" {
		return r.Placeholder(width, height)
	}
	if size == "" {
		size = SizeOriginal
	}
	return r.imageBase + size + "/" + strings.TrimPrefix(*path, "/")
}

// Placeholder returns the deterministic placeholder URL for the given box.
func (r *Resolver) Placeholder(width, height int) string {
	return fmt.Sprintf("%s%dx%d?text=No+Image", r.placeholderBase, width, height)
}

// Ref builds an ImageRef for a titled image.
func (r *Resolver) Ref(path *string, size, title string) ImageRef {
	w, h := Dimensions(size)
	placeholder := r.Placeholder(w, h)
	ref := ImageRef{
		URL:         r.ResolveSized(path, size, w, h),
		Alt:         title,
		FallbackURL: placeholder,
		FallbackAlt: FallbackAlt,
	}
	if ref.URL == placeholder {
		ref.Placeholder = true
		ref.Alt = FallbackAlt
	}
	return ref
}

// Dimensions returns the pixel box implied by a size token.
func Dimensions(size string) (int, int) {
	width := 500
	if strings.HasPrefix(size, "w") {
		if n, err := strconv.Atoi(size[1:]); err == nil && n > 0 {
			width = n
		}
	}
	if backdropTokens[size] {
		return width, width * 9 / 16
	}
	return width, width * 3 / 2
}

func ensureSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
