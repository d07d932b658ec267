package models

// Genre is an ordered {id, name} pair as the provider lists it.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Company is a production company or a TV network.
type Company struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country,omitempty"`
}

// MediaDetails extends a MediaItem with kind-specific detail fields.
// Implementations: MovieDetails and ShowDetails.
type MediaDetails interface {
	MediaItem
	GenreList() []Genre
	mediaDetails()
}

type MovieDetails struct {
	Movie
	Genres              []Genre   `json:"genres"`
	Runtime             int       `json:"runtime"`
	ProductionCompanies []Company `json:"production_companies"`
	Tagline             string    `json:"tagline"`
	Status              string    `json:"status"`
	IMDBId              string    `json:"imdb_id,omitempty"`
	Homepage            string    `json:"homepage,omitempty"`
}

type ShowDetails struct {
	Show
	Genres           []Genre   `json:"genres"`
	EpisodeRunTime   []int     `json:"episode_run_time"`
	NumberOfSeasons  int       `json:"number_of_seasons"`
	NumberOfEpisodes int       `json:"number_of_episodes"`
	Networks         []Company `json:"networks"`
	Tagline          string    `json:"tagline"`
	Status           string    `json:"status"`
	Homepage         string    `json:"homepage,omitempty"`
}

func (d MovieDetails) GenreList() []Genre { return d.Genres }
func (MovieDetails) mediaDetails() {}
func (d ShowDetails) GenreList() []Genre { return d.Genres }
func (ShowDetails) mediaDetails() {}

func NewMovieDetails(d TMDBMovieDetails) MovieDetails {
	return MovieDetails{
		Movie:               NewMovie(d.TMDBMovie),
		Genres:              ConvertGenres(d.Genres),
		Runtime:             d.Runtime,
		ProductionCompanies: convertCompanies(d.ProductionCompanies),
		Tagline:             d.Tagline,
		Status:              d.Status,
		IMDBId:              d.IMDBId,
		Homepage:            d.Homepage,
	}
}

func NewShowDetails(d TMDBTVDetails) ShowDetails {
	runtimes := d.EpisodeRunTime
	if runtimes == nil {
		runtimes = []int{}
	}
	return ShowDetails{
		Show:             NewShow(d.TMDBTV),
		Genres:           ConvertGenres(d.Genres),
		EpisodeRunTime:   runtimes,
		NumberOfSeasons:  d.NumberOfSeasons,
		NumberOfEpisodes: d.NumberOfEpisodes,
		Networks:         convertCompanies(d.Networks),
		Tagline:          d.Tagline,
		Status:           d.Status,
		Homepage:         d.Homepage,
	}
}

// ConvertGenres maps provider genres, keeping provider order.
func ConvertGenres(in []TMDBGenre) []Genre {
	out := make([]Genre, 0, len(in))
	for _, g := range in {
		out = append(out, Genre{ID: g.ID, Name: g.Name})
	}
	return out
}

func convertCompanies(in []TMDBCompany) []Company {
	out := make([]Company, 0, len(in))
	for _, c := range in {
		out = append(out, Company{
			ID:            c.ID,
			Name:          c.Name,
			LogoPath:      nonEmpty(c.LogoPath),
			OriginCountry: c.OriginCountry,
		})
	}
	return out
}
