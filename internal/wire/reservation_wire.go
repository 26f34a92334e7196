package wire

import (
	"cinema-rooms/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	// Booking is open to anyone; attribution is just the submitted name.
	r.Post("/api/reservations", reservationHandler.CreateReservations)
}
