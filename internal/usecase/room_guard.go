package usecase

// ValidateRoomDimensions is the pre-commit gate on room create/update: the
// grid may grow or change freely, but never shrink below a seat somebody
// already holds. It is re-evaluated on every attempt because reservations
// change independently of the room.
func ValidateRoomDimensions(rows, columns, maxReservedRow, maxReservedColumn int) []Violation {
	var violations []Violation

	if rows < maxReservedRow {
		violations = append(violations, violationRowsBelowReservations(rows))
	}
	if columns < maxReservedColumn {
		violations = append(violations, violationColumnsBelowReservations(columns))
	}

	return violations
}
