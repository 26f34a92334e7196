package adaptor

import (
	"cinema-rooms/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Room        *RoomHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Room:        NewRoomHandler(service.Room, log),
		Reservation: NewReservationHandler(service.Booking, log),
	}
}
