package response

import (
	"time"

	"cinema-rooms/internal/data/entity"
)

type RoomResponse struct {
	ID            int64     `json:"id"`
	Rows          int       `json:"rows"`
	Columns       int       `json:"columns"`
	Movie         string    `json:"movie"`
	Creation      time.Time `json:"creation"`
	Updated       time.Time `json:"updated"`
	MovieDatetime time.Time `json:"movieDatetime"`
}

// PublicRoomResponse is the unauthenticated listing: room plus who holds
// which seats.
type PublicRoomResponse struct {
	ID            int64                  `json:"id"`
	Rows          int                    `json:"rows"`
	Columns       int                    `json:"columns"`
	Movie         string                 `json:"movie"`
	MovieDatetime time.Time              `json:"movieDatetime"`
	ReservedSeats []ReservedSeatResponse `json:"reservedSeats"`
}

type ReservedSeatResponse struct {
	Row            int    `json:"row"`
	Column         int    `json:"column"`
	ReservedByName string `json:"reservedByName"`
}

func RoomToResponse(room *entity.CinemaRoom) RoomResponse {
	return RoomResponse{
		ID:            room.ID,
		Rows:          room.Rows,
		Columns:       room.Columns,
		Movie:         room.Movie,
		Creation:      room.CreatedAt,
		Updated:       room.UpdatedAt,
		MovieDatetime: room.MovieDatetime,
	}
}

func RoomToPublicResponse(room *entity.CinemaRoom, reservations []*entity.Reservation) PublicRoomResponse {
	seats := make([]ReservedSeatResponse, 0, len(reservations))
	for _, res := range reservations {
		seats = append(seats, ReservedSeatResponse{
			Row:            res.Row,
			Column:         res.Column,
			ReservedByName: res.ReservedByName,
		})
	}

	return PublicRoomResponse{
		ID:            room.ID,
		Rows:          room.Rows,
		Columns:       room.Columns,
		Movie:         room.Movie,
		MovieDatetime: room.MovieDatetime,
		ReservedSeats: seats,
	}
}
