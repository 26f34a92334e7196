package repository

import (
	"cinema-rooms/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room        RoomRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:        NewRoomRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}
