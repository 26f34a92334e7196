package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cinema-rooms/internal/dto/request"
	"cinema-rooms/internal/usecase"
	"cinema-rooms/pkg/utils"

	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.BookingService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservations handles POST /api/reservations
func (h *ReservationHandler) CreateReservations(w http.ResponseWriter, r *http.Request) {
	var req request.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.ReservedByName = strings.TrimSpace(req.ReservedByName)

	if messages := utils.ValidateStruct(req); len(messages) > 0 {
		utils.ResponseValidation(w, messages)
		return
	}

	created, err := h.service.CreateReservations(r.Context(), &req)
	if err != nil {
		var validationErr *usecase.ValidationError

		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			utils.ResponseError(w, http.StatusNotFound, msgRoomNotFound)

		case errors.As(err, &validationErr):
			utils.ResponseValidation(w, validationErr.Messages())

		default:
			h.log.Error("Failed to create reservations",
				zap.Error(err),
				zap.Int64("room_id", req.CinemaRoomID),
			)
			utils.ResponseInternalError(w)
		}
		return
	}

	utils.ResponseMessageData(w, http.StatusCreated, "Reservations created.", created)
}
