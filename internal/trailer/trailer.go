// Package trailer picks the main trailer for a title from its video list.
package trailer

import "github.com/amaumene/gocatalog/internal/models"

const (
	SiteYouTube = "YouTube"
	TypeTrailer = "Trailer"
	TypeTeaser  = "Teaser"
)

type tier func(v models.Video) bool

// tiers are tried in order; each scans the whole list before the next one.
var tiers = []tier{
	func(v models.Video) bool { return v.Site == SiteYouTube && v.Type == TypeTrailer && v.Official },
	func(v models.Video) bool { return v.Site == SiteYouTube && v.Type == TypeTrailer },
	func(v models.Video) bool { return v.Site == SiteYouTube && v.Type == TypeTeaser },
}

// Resolve returns the best preview among videos, or false when none qualifies.
// Within a tier the first video in list order wins.
func Resolve(videos []models.Video) (models.Video, bool) {
	for _, match := range tiers {
		for _, v := range videos {
			if match(v) {
				return v, true
			}
		}
	}
	return models.Video{}, false
}

// WatchURL returns the playback and embed URLs for a resolved YouTube video.
func WatchURL(v models.Video) (watch, embed string) {
	return "https://www.youtube.com/watch?v=" + v.Key, "https://www.youtube.com/embed/" + v.Key
}
