package metadata

// Movie is the provider's record shape. Ids here are catalog-style strings
// ("tt0468569") and are a different namespace from local numeric ids.
type Movie struct {
	ID             string   `json:"id"`
	PrimaryTitle   string   `json:"primaryTitle"`
	OriginalTitle  string   `json:"originalTitle,omitempty"`
	PrimaryImage   string   `json:"primaryImage"`
	AverageRating  float64  `json:"averageRating"`
	ReleaseDate    string   `json:"releaseDate"`
	Description    string   `json:"description"`
	ContentRating  string   `json:"contentRating"`
	Genres         []string `json:"genres"`
	RuntimeMinutes int      `json:"runtimeMinutes"`
	Budget         int64    `json:"budget"`
	NumVotes       int64    `json:"numVotes"`
	Type           string   `json:"type"`
	URL            string   `json:"url"`
}

// popularResponse covers the wrapped `{movies: [...]}` shape the provider
// sometimes returns in place of a bare array.
type popularResponse struct {
	Movies []Movie `json:"movies"`
}
