// Package constants defines application-wide constants and default values.
package constants

const (
	// Service metadata
	ServiceID          = "gocatalog.catalog"
	ServiceVersion     = "1.0.0"
	ServiceName        = "GoCatalog"
	ServiceDescription = "Browse trending and popular movies and TV shows backed by TMDB"

	// Default configuration values
	DefaultPort     = "5000"
	DefaultLogLevel = "info"

	// Provider endpoints
	DefaultAPIBaseURL         = "https://api.themoviedb.org/3"
	DefaultImageBaseURL       = "https://image.tmdb.org/t/p/"
	DefaultPlaceholderBaseURL = "https://placehold.co/"
	DefaultLanguage           = "en-US"

	// Provider paging
	ProviderPageSize = 20
	ProviderMaxPage  = 500

	// Pagination window
	DefaultPaginationWindow = 7
	MinPaginationWindow     = 5
	MaxPaginationWindow     = 9
	DefaultPageKey          = "page"

	// Cache settings
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 24 // hours

	// Inbound rate limiting, per client
	InboundRateCapacity = 40 // burst
	InboundRateRefill   = 10 // tokens per second

	// Genre directory
	DefaultGenreRefreshSchedule = "@every 12h"
	DefaultCacheCleanupSchedule = "@hourly"

	// Popular movies sources
	PopularSourcePopular    = "popular"
	PopularSourceNowPlaying = "now_playing"
)

// SupportedImageSizes lists the size tokens the image resolver knows dimensions for.
var SupportedImageSizes = []string{
	"w92", "w154", "w185", "w300", "w342", "w500", "w780", "w1280", "original",
}
