package entity

import "time"

// CinemaRoom is an auditorium with a rows x columns seat grid and one
// scheduled movie showtime. Timestamps are stamped by the service layer,
// not by store triggers.
type CinemaRoom struct {
	ID            int64     `db:"id"`
	Rows          int       `db:"seat_rows"`
	Columns       int       `db:"seat_columns"`
	Movie         string    `db:"movie"`
	CreatedAt     time.Time `db:"creation"`
	UpdatedAt     time.Time `db:"updated"`
	MovieDatetime time.Time `db:"movie_datetime"`
}
