package dto

import (
	"fmt"
	"strconv"

	"reelcritic/internal/api/models"
	"reelcritic/internal/metadata"
)

// ResolutionSource tags where a resolved movie record came from. Callers
// branch on this, never on sentinel titles.
type ResolutionSource string

const (
	SourceLocal    ResolutionSource = "local"
	SourceExternal ResolutionSource = "external"
	SourceNotFound ResolutionSource = "not_found"
	SourceError    ResolutionSource = "error"
)

// MovieDetails is the display schema shared by the local store, the external
// provider and the placeholder records.
type MovieDetails struct {
	ID               string   `json:"id"`
	PrimaryTitle     string   `json:"primaryTitle"`
	PrimaryImage     string   `json:"primaryImage"`
	AverageRating    float64  `json:"averageRating"`
	ReleaseDate      string   `json:"releaseDate"`
	Description      string   `json:"description"`
	ContentRating    string   `json:"contentRating"`
	Genres           []string `json:"genres"`
	RuntimeMinutes   int      `json:"runtimeMinutes"`
	Budget           int64    `json:"budget"`
	CountriesOfOrigin []string `json:"countriesOfOrigin"`
	FilmingLocations []string `json:"filmingLocations"`
	NumVotes         int64    `json:"numVotes"`
	Type             string   `json:"type"`
	URL              string   `json:"url"`
}

// MovieResolution is the total result of the resolution chain.
type MovieResolution struct {
	Movie  MovieDetails     `json:"movie"`
	Source ResolutionSource `json:"source"`
	Cause  string           `json:"cause,omitempty"` // set when Source == "error"
}

// FromModelToMovieDetails transforms the store schema into the display
// schema. Fields the local store does not carry (budget, votes, locations)
// default to zero/empty.
func FromModelToMovieDetails(movie *models.Movie) MovieDetails {
	id := strconv.FormatInt(movie.ID, 10)
	return MovieDetails{
		ID:                id,
		PrimaryTitle:      movie.Title,
		PrimaryImage:      movie.PosterURL,
		AverageRating:     movie.Rating,
		ReleaseDate:       movie.Year,
		Description:       movie.Plot,
		ContentRating:     "PG-13",
		Genres:            movie.Genres,
		RuntimeMinutes:    movie.Runtime,
		Budget:            0,
		CountriesOfOrigin: []string{},
		FilmingLocations:  []string{},
		NumVotes:          0,
		Type:              "Movie",
		URL:               fmt.Sprintf("/movies/%s", id),
	}
}

// FromProviderToMovieDetails maps an external provider record into the
// display schema.
func FromProviderToMovieDetails(movie *metadata.Movie) MovieDetails {
	title := movie.PrimaryTitle
	if title == "" {
		title = movie.OriginalTitle
	}
	return MovieDetails{
		ID:                movie.ID,
		PrimaryTitle:      title,
		PrimaryImage:      movie.PrimaryImage,
		AverageRating:     movie.AverageRating,
		ReleaseDate:       movie.ReleaseDate,
		Description:       movie.Description,
		ContentRating:     movie.ContentRating,
		Genres:            movie.Genres,
		RuntimeMinutes:    movie.RuntimeMinutes,
		Budget:            movie.Budget,
		CountriesOfOrigin: []string{},
		FilmingLocations:  []string{},
		NumVotes:          movie.NumVotes,
		Type:              "Movie",
		URL:               fmt.Sprintf("/movies/%s", movie.ID),
	}
}

// NotFoundMovie synthesizes the placeholder terminal record for an id no
// source knows. This is a valid result, not a failure.
func NotFoundMovie(id string) MovieResolution {
	return MovieResolution{
		Source: SourceNotFound,
		Movie: MovieDetails{
			ID:                id,
			PrimaryTitle:      "Movie Details Not Available",
			PrimaryImage:      "https://via.placeholder.com/300x450?text=No+Image",
			ReleaseDate:       "Unknown",
			Description:       "Details for this movie are not available at the moment.",
			ContentRating:     "Unknown",
			Genres:            []string{"Unknown"},
			CountriesOfOrigin: []string{},
			FilmingLocations:  []string{},
			Type:              "Movie",
			URL:               fmt.Sprintf("/movies/%s", id),
		},
	}
}

// ErrorMovie synthesizes the record returned when a transport failure stops
// the chain. The cause travels in the tag, not the title.
func ErrorMovie(id string, cause error) MovieResolution {
	res := MovieResolution{
		Source: SourceError,
		Movie: MovieDetails{
			ID:                id,
			PrimaryTitle:      "Error Loading Movie",
			PrimaryImage:      "https://via.placeholder.com/300x450?text=Error",
			ReleaseDate:       "Unknown",
			Description:       "There was an error loading this movie's details. Please try again later.",
			ContentRating:     "Unknown",
			Genres:            []string{"Unknown"},
			CountriesOfOrigin: []string{},
			FilmingLocations:  []string{},
			Type:              "Movie",
			URL:               fmt.Sprintf("/movies/%s", id),
		},
	}
	if cause != nil {
		res.Cause = cause.Error()
	}
	return res
}

// MovieSummary is the autocomplete result shape.
type MovieSummary struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Type          string  `json:"type"`
	Year          string  `json:"year"`
	Poster        string  `json:"poster"`
	AverageRating float64 `json:"averageRating"`
}

// FromModelToMovieSummary converts a Movie model to a suggestion entry.
// Absent fields default rather than dropping the record.
func FromModelToMovieSummary(movie *models.Movie) MovieSummary {
	kind := "Movie"
	if len(movie.Genres) > 0 {
		kind = movie.Genres[0]
	}
	year := movie.Year
	if year == "" {
		year = "Unknown"
	}
	return MovieSummary{
		ID:            strconv.FormatInt(movie.ID, 10),
		Title:         movie.Title,
		Type:          kind,
		Year:          year,
		Poster:        movie.PosterURL,
		AverageRating: movie.Rating,
	}
}

// MovieLikeResponse reports like state after a toggle.
type MovieLikeResponse struct {
	MovieID string `json:"movie_id"`
	Liked   bool   `json:"liked"`
	Likes   int64  `json:"likes"`
}
