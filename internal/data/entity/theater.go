package entity

type Theater struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// MovieTheater joins theatrical movies to the theaters screening them.
// Rows only exist for movies with is_theatrical_release = true.
type MovieTheater struct {
	ID        int64 `db:"id"`
	MovieID   int64 `db:"movie_id"`
	TheaterID int64 `db:"theaters_id"`
}
