package repository

import (
	"context"
	"fmt"

	"cinema-rooms/internal/data/entity"
	"cinema-rooms/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.CinemaRoom) error
	FindByID(ctx context.Context, id int64) (*entity.CinemaRoom, error)
	FindAll(ctx context.Context) ([]*entity.CinemaRoom, error)
	Update(ctx context.Context, room *entity.CinemaRoom) error
	Delete(ctx context.Context, id int64) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.CinemaRoom) error {
	query := `
		INSERT INTO cinema_room (seat_rows, seat_columns, movie, creation, updated, movie_datetime)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		room.Rows,
		room.Columns,
		room.Movie,
		room.CreatedAt,
		room.UpdatedAt,
		room.MovieDatetime,
	).Scan(&room.ID)

	if err != nil {
		r.log.Error("Failed to create cinema room",
			zap.Error(err),
			zap.String("movie", room.Movie),
		)
		return fmt.Errorf("create cinema room: %w", err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.CinemaRoom, error) {
	query := `
		SELECT id, seat_rows, seat_columns, movie, creation, updated, movie_datetime
		FROM cinema_room
		WHERE id = $1
	`

	var room entity.CinemaRoom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Rows,
		&room.Columns,
		&room.Movie,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.MovieDatetime,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema room by ID",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return nil, fmt.Errorf("find cinema room %d: %w", id, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.CinemaRoom, error) {
	query := `
		SELECT id, seat_rows, seat_columns, movie, creation, updated, movie_datetime
		FROM cinema_room
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list cinema rooms", zap.Error(err))
		return nil, fmt.Errorf("list cinema rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.CinemaRoom
	for rows.Next() {
		var room entity.CinemaRoom
		err := rows.Scan(
			&room.ID,
			&room.Rows,
			&room.Columns,
			&room.Movie,
			&room.CreatedAt,
			&room.UpdatedAt,
			&room.MovieDatetime,
		)
		if err != nil {
			r.log.Error("Failed to scan cinema room row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cinema room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.CinemaRoom) error {
	query := `
		UPDATE cinema_room
		SET seat_rows = $2, seat_columns = $3, movie = $4, updated = $5, movie_datetime = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Rows,
		room.Columns,
		room.Movie,
		room.UpdatedAt,
		room.MovieDatetime,
	)

	if err != nil {
		r.log.Error("Failed to update cinema room",
			zap.Error(err),
			zap.Int64("room_id", room.ID),
		)
		return fmt.Errorf("update cinema room %d: %w", room.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update cinema room %d: %w", room.ID, ErrNotFound)
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM cinema_room WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete cinema room",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return fmt.Errorf("delete cinema room %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete cinema room %d: %w", id, ErrNotFound)
	}

	r.log.Info("Cinema room deleted", zap.Int64("room_id", id))
	return nil
}
