package entity

type Movie struct {
	ID                  int64   `db:"id"`
	Title               string  `db:"title"`
	ReleaseDate         string  `db:"release_date"` // ISO date string, e.g. 2024-10-31
	PosterPath          *string `db:"poster_path"`
	Overview            *string `db:"overview"`
	VoteAverage         float64 `db:"vote_average"`
	VoteCount           int64   `db:"vote_count"`
	TheMovieDbID        int64   `db:"the_movie_db_id"`
	IsTheatricalRelease bool    `db:"is_theatrical_release"`
}
