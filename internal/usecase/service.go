package usecase

import (
	"cinema-rooms/internal/data/repository"
	"cinema-rooms/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Room    RoomService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *Service {
	return &Service{
		Room:    NewRoomService(repo, logger),
		Booking: NewBookingService(repo, logger),
	}
}
