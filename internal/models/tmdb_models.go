// Package models defines data structures for TMDB API responses and the
// normalized catalog types built from them.
package models

import "encoding/json"

// TMDBListResponse is the envelope of every paginated provider endpoint.
// Results stay raw until the media kind of each entry is known.
type TMDBListResponse struct {
	Page         int               `json:"page"`
	Results      []json.RawMessage `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

// TMDBErrorResponse is the body the provider sends with non-2xx statuses.
type TMDBErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}

type TMDBMediaType struct {
	MediaType string `json:"media_type"`
}

type TMDBMovie struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    *string `json:"poster_path"`
	BackdropPath  *string `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	GenreIDs      []int   `json:"genre_ids"`
	Popularity    float64 `json:"popularity"`
}

type TMDBTV struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int   `json:"genre_ids"`
	Popularity   float64 `json:"popularity"`
}

type TMDBPerson struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        *string `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TMDBGenreResponse struct {
	Genres []TMDBGenre `json:"genres"`
}

type TMDBCompany struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
}

type TMDBMovieDetails struct {
	TMDBMovie
	Genres              []TMDBGenre   `json:"genres"`
	Runtime             int           `json:"runtime"`
	ProductionCompanies []TMDBCompany `json:"production_companies"`
	Tagline             string        `json:"tagline"`
	Status              string        `json:"status"`
	IMDBId              string        `json:"imdb_id"`
	Homepage            string        `json:"homepage"`
}

type TMDBTVDetails struct {
	TMDBTV
	Genres           []TMDBGenre   `json:"genres"`
	EpisodeRunTime   []int         `json:"episode_run_time"`
	NumberOfSeasons  int           `json:"number_of_seasons"`
	NumberOfEpisodes int           `json:"number_of_episodes"`
	Networks         []TMDBCompany `json:"networks"`
	Tagline          string        `json:"tagline"`
	Status           string        `json:"status"`
	Homepage         string        `json:"homepage"`
}

type TMDBVideo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	Size        int    `json:"size"`
	PublishedAt string `json:"published_at"`
}

type TMDBVideosResponse struct {
	ID      int         `json:"id"`
	Results []TMDBVideo `json:"results"`
}
