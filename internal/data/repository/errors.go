package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// SeatTakenError reports the first seat whose insert hit the
// cinema_room_seat_unique index. It matches ErrConflict via errors.Is so
// callers can treat it as the generic conflict class.
type SeatTakenError struct {
	Row    int
	Column int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat row %d, column %d is already reserved", e.Row, e.Column)
}

func (e *SeatTakenError) Is(target error) bool {
	return target == ErrConflict
}

// pg error code for unique_violation
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
