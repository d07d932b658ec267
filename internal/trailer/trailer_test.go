package trailer

import (
	"testing"

	"github.com/amaumene/gocatalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTiers(t *testing.T) {
	tests := []struct {
		name    string
		videos  []models.Video
		wantKey string
		found   bool
	}{
		{
			name:  "empty list",
			found: false,
		},
		{
			name: "vimeo trailer loses to youtube teaser",
			videos: []models.Video{
				{Site: "Vimeo", Type: "Trailer", Key: "vim"},
				{Site: "YouTube", Type: "Teaser", Key: "tease"},
			},
			wantKey: "tease",
			found:   true,
		},
		{
			name: "official trailer beats earlier unofficial one",
			videos: []models.Video{
				{Site: "YouTube", Type: "Trailer", Key: "fan"},
				{Site: "YouTube", Type: "Teaser", Official: true, Key: "tease"},
				{Site: "YouTube", Type: "Trailer", Official: true, Key: "official"},
			},
			wantKey: "official",
			found:   true,
		},
		{
			name: "unofficial trailer beats official teaser",
			videos: []models.Video{
				{Site: "YouTube", Type: "Teaser", Official: true, Key: "tease"},
				{Site: "YouTube", Type: "Trailer", Key: "fan"},
			},
			wantKey: "fan",
			found:   true,
		},
		{
			name: "first match wins within a tier",
			videos: []models.Video{
				{Site: "YouTube", Type: "Trailer", Official: true, Key: "first"},
				{Site: "YouTube", Type: "Trailer", Official: true, Key: "second"},
			},
			wantKey: "first",
			found:   true,
		},
		{
			name: "clips and other sites are ignored",
			videos: []models.Video{
				{Site: "YouTube", Type: "Clip", Official: true, Key: "clip"},
				{Site: "Vimeo", Type: "Teaser", Key: "vim"},
				{Site: "youtube", Type: "Trailer", Key: "lowercase"},
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.videos)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantKey, got.Key)
		})
	}
}

func TestWatchURL(t *testing.T) {
	watch, embed := WatchURL(models.Video{Site: "YouTube", Key: "abc123"})
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", watch)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", embed)
}
