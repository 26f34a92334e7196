package entity

import "time"

// Seat is a (row, column) coordinate inside a room's grid.
type Seat struct {
	Row    int
	Column int
}

// Reservation books one seat in one room for a named person. Rows are
// created only inside the booking transaction and never updated in place;
// (cinema_room_id, seat_row, seat_column) is unique at the store level.
type Reservation struct {
	ID             int64     `db:"id"`
	CinemaRoomID   int64     `db:"cinema_room_id"`
	Row            int       `db:"seat_row"`
	Column         int       `db:"seat_column"`
	ReservedByName string    `db:"reserved_by_name"`
	CreatedAt      time.Time `db:"creation"`
}
