package models

import "fmt"

// MediaKind discriminates the MediaItem variants.
type MediaKind string

const (
	KindMovie  MediaKind = "movie"
	KindTV     MediaKind = "tv"
	KindPerson MediaKind = "person"
)

// ParseDetailKind accepts the kinds that have a details endpoint.
func ParseDetailKind(s string) (MediaKind, error) {
	switch MediaKind(s) {
	case KindMovie, KindTV:
		return MediaKind(s), nil
	case "":
		return "", fmt.Errorf("media kind is required")
	}
	return "", fmt.Errorf("media kind %q is not one of movie, tv", s)
}

// Summary holds the attributes every catalog entry shares.
type Summary struct {
	ID           int       `json:"id"`
	MediaType    MediaKind `json:"media_type"`
	Overview     string    `json:"overview"`
	PosterPath   *string   `json:"poster_path"`
	BackdropPath *string   `json:"backdrop_path"`
	VoteAverage  float64   `json:"vote_average"`
	VoteCount    int       `json:"vote_count"`
	Popularity   float64   `json:"popularity"`
}

// MediaItem is a normalized movie, show or person summary. The set of
// implementations is closed: Movie, Show and Person.
type MediaItem interface {
	Kind() MediaKind
	Base() Summary
	DisplayTitle() string
	// DisplayDate is the release or first-air date, "" when unknown.
	DisplayDate() string
	mediaItem()
}

type Movie struct {
	Summary
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title,omitempty"`
	ReleaseDate   *string `json:"release_date"`
}

type Show struct {
	Summary
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name,omitempty"`
	FirstAirDate *string `json:"first_air_date"`
}

type Person struct {
	Summary
	Name               string `json:"name"`
	KnownForDepartment string `json:"known_for_department,omitempty"`
}

func (m Movie) Kind() MediaKind { return KindMovie }
func (m Movie) Base() Summary { return m.Summary }
func (m Movie) DisplayTitle() string { return m.Title }
func (m Movie) DisplayDate() string { return deref(m.ReleaseDate) }
func (Movie) mediaItem() {}
func (s Show) Kind() MediaKind { return KindTV }
func (s Show) Base() Summary { return s.Summary }
func (s Show) DisplayTitle() string { return s.Name }
func (s Show) DisplayDate() string { return deref(s.FirstAirDate) }
func (Show) mediaItem() {}
func (p Person) Kind() MediaKind { return KindPerson }
func (p Person) Base() Summary { return p.Summary }
func (p Person) DisplayTitle() string { return p.Name }
func (p Person) DisplayDate() string { return "" }
func (Person) mediaItem() {}

// NewMovie builds a Movie from the provider shape.
func NewMovie(m TMDBMovie) Movie {
	return Movie{
		Summary: Summary{
			ID:           m.ID,
			MediaType:    KindMovie,
			Overview:     m.Overview,
			PosterPath:   nonEmpty(m.PosterPath),
			BackdropPath: nonEmpty(m.BackdropPath),
			VoteAverage:  m.VoteAverage,
			VoteCount:    m.VoteCount,
			Popularity:   m.Popularity,
		},
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		ReleaseDate:   optional(m.ReleaseDate),
	}
}

// NewShow builds a Show from the provider shape.
func NewShow(tv TMDBTV) Show {
	return Show{
		Summary: Summary{
			ID:           tv.ID,
			MediaType:    KindTV,
			Overview:     tv.Overview,
			PosterPath:   nonEmpty(tv.PosterPath),
			BackdropPath: nonEmpty(tv.BackdropPath),
			VoteAverage:  tv.VoteAverage,
			VoteCount:    tv.VoteCount,
			Popularity:   tv.Popularity,
		},
		Name:         tv.Name,
		OriginalName: tv.OriginalName,
		FirstAirDate: optional(tv.FirstAirDate),
	}
}

// NewPerson builds a Person; the profile picture is exposed as the poster.
func NewPerson(p TMDBPerson) Person {
	return Person{
		Summary: Summary{
			ID:         p.ID,
			MediaType:  KindPerson,
			PosterPath: nonEmpty(p.ProfilePath),
			Popularity: p.Popularity,
		},
		Name:               p.Name,
		KnownForDepartment: p.KnownForDepartment,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
