package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Violation is one failed rule, addressed to the field that caused it so
// clients can map errors back onto their form. Template is machine-stable;
// Message carries the interpolated values.
type Violation struct {
	Template string
	Message  string
	Path     string
	Value    string
}

// ValidationError groups violations for the 422 response.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Path + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages returns per-field message lists keyed by field path.
func (e *ValidationError) Messages() map[string][]string {
	messages := make(map[string][]string, len(e.Violations))
	for _, v := range e.Violations {
		messages[v.Path] = append(messages[v.Path], v.Message)
	}
	return messages
}

func violationMovieStarted(movieDatetime time.Time) Violation {
	ts := movieDatetime.Format(time.RFC3339)
	return Violation{
		Template: "Reservations are not allowed after the movie start time.",
		Message:  fmt.Sprintf("Reservations are not allowed after the movie start time (movie: %s).", ts),
		Path:     "cinemaRoomId",
		Value:    ts,
	}
}

func violationRowExceedsLimit(index, row, limit int) Violation {
	return Violation{
		Template: "Row {{ value }} exceeds room limit of {{ limit }} rows.",
		Message:  fmt.Sprintf("Row %d exceeds room limit of %d rows.", row, limit),
		Path:     fmt.Sprintf("seats[%d].row", index),
		Value:    strconv.Itoa(row),
	}
}

func violationColumnExceedsLimit(index, column, limit int) Violation {
	return Violation{
		Template: "Column {{ value }} exceeds room limit of {{ limit }} columns.",
		Message:  fmt.Sprintf("Column %d exceeds room limit of %d columns.", column, limit),
		Path:     fmt.Sprintf("seats[%d].column", index),
		Value:    strconv.Itoa(column),
	}
}

func violationDuplicateSeat(index, row, column int) Violation {
	return Violation{
		Template: "Seat row {{ row }}, column {{ column }} is duplicated in the request.",
		Message:  fmt.Sprintf("Seat row %d, column %d is duplicated in the request.", row, column),
		Path:     fmt.Sprintf("seats[%d]", index),
		Value:    fmt.Sprintf("%d-%d", row, column),
	}
}

func violationSeatTaken(row, column int) Violation {
	return Violation{
		Template: "Seat row {{ row }}, column {{ column }} is already reserved.",
		Message:  fmt.Sprintf("Seat row %d, column %d is already reserved.", row, column),
		Path:     "seats",
		Value:    fmt.Sprintf("%d-%d", row, column),
	}
}

func violationRowsBelowReservations(rows int) Violation {
	return Violation{
		Template: "Cannot set rows to {{ value }}: reservation(s) exist at row(s) beyond this limit.",
		Message:  fmt.Sprintf("Cannot set rows to %d: reservation(s) exist at row(s) beyond this limit.", rows),
		Path:     "rows",
		Value:    strconv.Itoa(rows),
	}
}

func violationColumnsBelowReservations(columns int) Violation {
	return Violation{
		Template: "Cannot set columns to {{ value }}: reservation(s) exist at column(s) beyond this limit.",
		Message:  fmt.Sprintf("Cannot set columns to %d: reservation(s) exist at column(s) beyond this limit.", columns),
		Path:     "columns",
		Value:    strconv.Itoa(columns),
	}
}

func violationInvalidDatetime(value string) Violation {
	return Violation{
		Template: "The value {{ value }} is not a valid date-time string.",
		Message:  fmt.Sprintf("The value %q is not a valid date-time string (e.g. ISO 8601: 2025-12-01T20:00:00+00:00).", value),
		Path:     "movieDatetime",
		Value:    value,
	}
}
