package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-rooms/internal/data/entity"
	"cinema-rooms/internal/data/repository"
	"cinema-rooms/internal/dto/request"
	"cinema-rooms/internal/dto/response"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateReservations(ctx context.Context, req *request.ReservationRequest) ([]response.ReservationResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// CreateReservations books the requested seats as one all-or-nothing batch.
// The validator pre-checks temporal, bounds and conflict rules, but the
// store's unique index is the correctness boundary: a commit-time violation
// from a racing request comes back as the same conflict violation.
func (s *bookingService) CreateReservations(ctx context.Context, req *request.ReservationRequest) ([]response.ReservationResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, req.CinemaRoomID)
	if err != nil {
		return nil, fmt.Errorf("create reservations: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	seats := make([]entity.Seat, len(req.Seats))
	for i, seat := range req.Seats {
		seats[i] = entity.Seat{Row: seat.Row, Column: seat.Column}
	}

	existing, err := s.repo.Reservation.FindSeatPairs(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("create reservations: %w", err)
	}

	if violations := ValidateBooking(room, seats, existing, time.Now()); len(violations) > 0 {
		s.log.Warn("Booking rejected by validator",
			zap.Int64("room_id", room.ID),
			zap.Int("seat_count", len(seats)),
			zap.Int("violation_count", len(violations)),
		)
		return nil, &ValidationError{Violations: violations}
	}

	created, err := s.repo.Reservation.CreateBatch(ctx, room.ID, req.ReservedByName, seats)
	if err != nil {
		var taken *repository.SeatTakenError
		if errors.As(err, &taken) {
			// A concurrent booking won the race after our pre-check.
			return nil, &ValidationError{Violations: []Violation{violationSeatTaken(taken.Row, taken.Column)}}
		}
		return nil, fmt.Errorf("create reservations for room %d: %w", room.ID, err)
	}

	s.log.Info("Booking committed",
		zap.Int64("room_id", room.ID),
		zap.Int("seat_count", len(created)),
		zap.String("reserved_by", req.ReservedByName),
	)

	resp := make([]response.ReservationResponse, len(created))
	for i, res := range created {
		resp[i] = response.ReservationToResponse(res)
	}

	return resp, nil
}
