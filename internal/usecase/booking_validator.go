package usecase

import (
	"fmt"
	"time"

	"cinema-rooms/internal/data/entity"
)

// ValidateBooking runs the three booking checks against a room: temporal
// (no booking strictly after the showtime; booking at the showtime is
// allowed), bounds (every seat inside the grid), and conflict (duplicates
// within the request, then seats already reserved). All checks run and all
// violations are returned together so the client sees every problem at once.
//
// existing is the room's currently reserved seat set; the caller reads it
// once so this function stays pure. The final word on conflicts is still
// the store's unique index.
func ValidateBooking(room *entity.CinemaRoom, seats []entity.Seat, existing []entity.Seat, now time.Time) []Violation {
	var violations []Violation

	if now.After(room.MovieDatetime) {
		violations = append(violations, violationMovieStarted(room.MovieDatetime))
	}

	for i, seat := range seats {
		if seat.Row > room.Rows {
			violations = append(violations, violationRowExceedsLimit(i, seat.Row, room.Rows))
		}
		if seat.Column > room.Columns {
			violations = append(violations, violationColumnExceedsLimit(i, seat.Column, room.Columns))
		}
	}

	// Duplicates within the request: every occurrence beyond the first is
	// reported and excluded from the already-reserved comparison.
	seen := make(map[string]bool, len(seats))
	requested := make(map[string]entity.Seat, len(seats))
	for i, seat := range seats {
		key := seatKey(seat.Row, seat.Column)
		if seen[key] {
			violations = append(violations, violationDuplicateSeat(i, seat.Row, seat.Column))
			continue
		}
		seen[key] = true
		requested[key] = seat
	}

	for _, seat := range existing {
		if _, ok := requested[seatKey(seat.Row, seat.Column)]; ok {
			violations = append(violations, violationSeatTaken(seat.Row, seat.Column))
		}
	}

	return violations
}

func seatKey(row, column int) string {
	return fmt.Sprintf("%d-%d", row, column)
}
