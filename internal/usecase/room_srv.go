package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-rooms/internal/data/entity"
	"cinema-rooms/internal/data/repository"
	"cinema-rooms/internal/dto/request"
	"cinema-rooms/internal/dto/response"

	"go.uber.org/zap"
)

type RoomService interface {
	ListRooms(ctx context.Context) ([]response.RoomResponse, error)
	ListPublicRooms(ctx context.Context) ([]response.PublicRoomResponse, error)
	GetRoom(ctx context.Context, id int64) (*response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.RoomCreateRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, id int64, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, id int64) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) ListRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	resp := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		resp[i] = response.RoomToResponse(room)
	}

	return resp, nil
}

func (s *roomService) ListPublicRooms(ctx context.Context) ([]response.PublicRoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	resp := make([]response.PublicRoomResponse, len(rooms))
	for i, room := range rooms {
		reservations, err := s.repo.Reservation.FindByRoomID(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("list reservations for room %d: %w", room.ID, err)
		}
		resp[i] = response.RoomToPublicResponse(room, reservations)
	}

	return resp, nil
}

func (s *roomService) GetRoom(ctx context.Context, id int64) (*response.RoomResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room %d: %w", id, err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomCreateRequest) (*response.RoomResponse, error) {
	movieDatetime, ok := parseMovieDatetime(req.MovieDatetime)
	if !ok {
		return nil, &ValidationError{Violations: []Violation{violationInvalidDatetime(req.MovieDatetime)}}
	}

	// Timestamps are stamped here, not by store hooks.
	now := time.Now()
	room := &entity.CinemaRoom{
		Rows:          req.Rows,
		Columns:       req.Columns,
		Movie:         req.Movie,
		CreatedAt:     now,
		UpdatedAt:     now,
		MovieDatetime: movieDatetime,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Cinema room created",
		zap.Int64("room_id", room.ID),
		zap.Int("rows", room.Rows),
		zap.Int("columns", room.Columns),
		zap.String("movie", room.Movie),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, id int64, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update room %d: %w", id, err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if req.Rows != nil {
		room.Rows = *req.Rows
	}
	if req.Columns != nil {
		room.Columns = *req.Columns
	}
	if req.Movie != nil {
		room.Movie = *req.Movie
	}
	if req.MovieDatetime != nil {
		movieDatetime, ok := parseMovieDatetime(*req.MovieDatetime)
		if !ok {
			return nil, &ValidationError{Violations: []Violation{violationInvalidDatetime(*req.MovieDatetime)}}
		}
		room.MovieDatetime = movieDatetime
	}

	// The guard runs on every attempt; reservations may have been added
	// since the last update.
	maxRow, maxColumn, err := s.repo.Reservation.MaxSeat(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update room %d: %w", id, err)
	}
	if violations := ValidateRoomDimensions(room.Rows, room.Columns, maxRow, maxColumn); len(violations) > 0 {
		s.log.Warn("Room dimension update rejected",
			zap.Int64("room_id", id),
			zap.Int("rows", room.Rows),
			zap.Int("columns", room.Columns),
			zap.Int("max_reserved_row", maxRow),
			zap.Int("max_reserved_column", maxColumn),
		)
		return nil, &ValidationError{Violations: violations}
	}

	room.UpdatedAt = time.Now()
	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room %d: %w", id, err)
	}

	s.log.Info("Cinema room updated", zap.Int64("room_id", id))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, id int64) error {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete room %d: %w", id, err)
	}
	if room == nil {
		return ErrRoomNotFound
	}

	count, err := s.repo.Reservation.CountByRoomID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete room %d: %w", id, err)
	}
	if count > 0 {
		s.log.Warn("Room deletion blocked by reservations",
			zap.Int64("room_id", id),
			zap.Int64("reservation_count", count),
		)
		return ErrRoomHasReservations
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete room %d: %w", id, err)
	}

	return nil
}

// movieDatetime layouts accepted on input, tried in order.
var movieDatetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseMovieDatetime(value string) (time.Time, bool) {
	for _, layout := range movieDatetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
