package usecase

import "errors"

var (
	ErrRoomNotFound        = errors.New("cinema room not found")
	ErrRoomHasReservations = errors.New("cinema room has reservations")
)
