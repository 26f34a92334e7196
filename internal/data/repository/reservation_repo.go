package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-rooms/internal/data/entity"
	"cinema-rooms/pkg/database"

	"go.uber.org/zap"
)

type ReservationRepository interface {
	FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Reservation, error)
	FindSeatPairs(ctx context.Context, roomID int64) ([]entity.Seat, error)
	MaxSeat(ctx context.Context, roomID int64) (maxRow, maxColumn int, err error)
	CountByRoomID(ctx context.Context, roomID int64) (int64, error)
	CreateBatch(ctx context.Context, roomID int64, reservedByName string, seats []entity.Seat) ([]*entity.Reservation, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Reservation, error) {
	query := `
		SELECT id, cinema_room_id, seat_row, seat_column, reserved_by_name, creation
		FROM cinema_room_reservations
		WHERE cinema_room_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to list reservations",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("list reservations for room %d: %w", roomID, err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		err := rows.Scan(
			&res.ID,
			&res.CinemaRoomID,
			&res.Row,
			&res.Column,
			&res.ReservedByName,
			&res.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) FindSeatPairs(ctx context.Context, roomID int64) ([]entity.Seat, error) {
	query := `
		SELECT seat_row, seat_column
		FROM cinema_room_reservations
		WHERE cinema_room_id = $1
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to load reserved seat pairs",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("load reserved seats for room %d: %w", roomID, err)
	}
	defer rows.Close()

	var seats []entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(&seat.Row, &seat.Column); err != nil {
			return nil, fmt.Errorf("scan reserved seat: %w", err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reserved seats: %w", err)
	}

	return seats, nil
}

func (r *reservationRepository) MaxSeat(ctx context.Context, roomID int64) (int, int, error) {
	query := `
		SELECT COALESCE(MAX(seat_row), 0), COALESCE(MAX(seat_column), 0)
		FROM cinema_room_reservations
		WHERE cinema_room_id = $1
	`

	var maxRow, maxColumn int
	if err := r.db.QueryRow(ctx, query, roomID).Scan(&maxRow, &maxColumn); err != nil {
		r.log.Error("Failed to compute max reserved seat",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return 0, 0, fmt.Errorf("max reserved seat for room %d: %w", roomID, err)
	}

	return maxRow, maxColumn, nil
}

func (r *reservationRepository) CountByRoomID(ctx context.Context, roomID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM cinema_room_reservations WHERE cinema_room_id = $1`,
		roomID,
	).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count reservations",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return 0, fmt.Errorf("count reservations for room %d: %w", roomID, err)
	}

	return total, nil
}

// CreateBatch inserts one reservation per seat inside a single transaction.
// Either every seat is persisted or none is. A unique-index violation is
// returned as *SeatTakenError carrying the seat whose insert lost the race.
func (r *reservationRepository) CreateBatch(ctx context.Context, roomID int64, reservedByName string, seats []entity.Seat) ([]*entity.Reservation, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	created := make([]*entity.Reservation, 0, len(seats))

	query := `
		INSERT INTO cinema_room_reservations (cinema_room_id, seat_row, seat_column, reserved_by_name, creation)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for _, seat := range seats {
		res := &entity.Reservation{
			CinemaRoomID:   roomID,
			Row:            seat.Row,
			Column:         seat.Column,
			ReservedByName: reservedByName,
			CreatedAt:      now,
		}

		err := tx.QueryRow(ctx, query, roomID, seat.Row, seat.Column, reservedByName, now).Scan(&res.ID)
		if err != nil {
			if isUniqueViolation(err) {
				r.log.Warn("Seat already reserved, rolling back batch",
					zap.Int64("room_id", roomID),
					zap.Int("row", seat.Row),
					zap.Int("column", seat.Column),
				)
				return nil, &SeatTakenError{Row: seat.Row, Column: seat.Column}
			}
			r.log.Error("Failed to insert reservation",
				zap.Error(err),
				zap.Int64("room_id", roomID),
				zap.Int("row", seat.Row),
				zap.Int("column", seat.Column),
			)
			return nil, fmt.Errorf("insert reservation (%d,%d) for room %d: %w", seat.Row, seat.Column, roomID, err)
		}

		created = append(created, res)
	}

	if err := tx.Commit(ctx); err != nil {
		// The unique index can also fire at commit time when a concurrent
		// booking landed first; report it as the same conflict class.
		if isUniqueViolation(err) {
			return nil, &SeatTakenError{Row: seats[0].Row, Column: seats[0].Column}
		}
		r.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("commit booking transaction for room %d: %w", roomID, err)
	}

	r.log.Info("Reservations created",
		zap.Int64("room_id", roomID),
		zap.Int("seat_count", len(created)),
		zap.String("reserved_by", reservedByName),
	)

	return created, nil
}
