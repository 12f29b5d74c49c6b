package response

import "movie-catalog/internal/data/entity"

// MovieResponse is a single listing entry. Providers holds the display
// name of the relevant provider (or theater, depending on the listing).
type MovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"posterPath"`
	ReleaseDate string  `json:"releaseDate"`
	Providers   string  `json:"providers,omitempty"`
}

type StreamingPageResponse struct {
	Movies      []MovieResponse `json:"movies"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

type MovieDetailResponse struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	PosterPath   *string          `json:"posterPath"`
	ReleaseDate  string           `json:"releaseDate"`
	Overview     *string          `json:"overview"`
	VoteAverage  float64          `json:"voteAverage"`
	VoteCount    int64            `json:"voteCount"`
	Providers    []string         `json:"providers"`
	TheMovieDbID int64            `json:"theMovieDbId"`
	Reviews      []ReviewResponse `json:"reviews"`
	TotalReviews int64            `json:"totalReviews"`
}

type ExpiringMovieResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"posterPath"`
	ExpiringDate string  `json:"expiringDate"`
	Providers    string  `json:"providers"`
}

type ExpiringMovieDetailResponse struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	PosterPath   *string          `json:"posterPath"`
	ExpiringDate string           `json:"expiringDate"`
	Overview     *string          `json:"overview"`
	VoteAverage  float64          `json:"voteAverage"`
	VoteCount    int64            `json:"voteCount"`
	Providers    []string         `json:"providers"`
	TheMovieDbID int64            `json:"theMovieDbId"`
	Reviews      []ReviewResponse `json:"reviews"`
	TotalReviews int64            `json:"totalReviews"`
}

// MovieToResponse builds a listing entry with the given provider label.
func MovieToResponse(movie *entity.Movie, providers string) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		PosterPath:  movie.PosterPath,
		ReleaseDate: movie.ReleaseDate,
		Providers:   providers,
	}
}
