package models

import "time"

// Video is a trailer or teaser candidate attached to a title.
type Video struct {
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
	Key      string `json:"key"`
}

func NewVideo(v TMDBVideo) Video {
	return Video{
		Name:     v.Name,
		Site:     v.Site,
		Type:     v.Type,
		Official: v.Official,
		Key:      v.Key,
	}
}

// PaginatedResult is one provider page of T.
// Invariant: 1 <= Page <= max(TotalPages, 1).
type PaginatedResult[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// EmptyPage is the neutral result returned without contacting the provider.
func EmptyPage[T any]() PaginatedResult[T] {
	return PaginatedResult[T]{Page: 1, Results: []T{}}
}

// GenreSnapshot is a genre list as fetched at a point in time.
type GenreSnapshot struct {
	Kind      MediaKind `json:"kind"`
	Genres    []Genre   `json:"genres"`
	FetchedAt time.Time `json:"fetched_at"`
}
