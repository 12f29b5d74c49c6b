package entity

import "time"

// NetflixHorrorExpiring tracks the scheduled Netflix removal date of a
// horror movie. It references movies by the_movie_db_id, not by primary key.
type NetflixHorrorExpiring struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	ExpiredDate  time.Time `db:"expired_date"`
	TheMovieDbID int64     `db:"the_movie_db_id"`
}
