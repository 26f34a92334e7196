package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cinema-rooms/internal/dto/request"
	"cinema-rooms/internal/usecase"
	"cinema-rooms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const msgRoomNotFound = "Cinema room not found."

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRooms handles GET /api/cinema-rooms
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list rooms")
		return
	}

	utils.ResponseData(w, http.StatusOK, rooms)
}

// ListPublicRooms handles GET /api/public/cinema-rooms
func (h *RoomHandler) ListPublicRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListPublicRooms(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list public rooms")
		return
	}

	utils.ResponseData(w, http.StatusOK, rooms)
}

// GetRoom handles GET /api/cinema-rooms/{id}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseError(w, http.StatusNotFound, msgRoomNotFound)
		return
	}

	room, err := h.service.GetRoom(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get room")
		return
	}

	utils.ResponseData(w, http.StatusOK, room)
}

// CreateRoom handles POST /api/cinema-rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Movie = strings.TrimSpace(req.Movie)

	if messages := utils.ValidateStruct(req); len(messages) > 0 {
		utils.ResponseValidation(w, messages)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create room")
		return
	}

	utils.ResponseData(w, http.StatusCreated, room)
}

// UpdateRoom handles PUT/PATCH /api/cinema-rooms/{id}
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseError(w, http.StatusNotFound, msgRoomNotFound)
		return
	}

	var req request.RoomUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if messages := utils.ValidateStruct(req); len(messages) > 0 {
		utils.ResponseValidation(w, messages)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update room")
		return
	}

	utils.ResponseData(w, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/cinema-rooms/{id}
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseError(w, http.StatusNotFound, msgRoomNotFound)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete room")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *RoomHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		utils.ResponseError(w, http.StatusNotFound, msgRoomNotFound)

	case errors.Is(err, usecase.ErrRoomHasReservations):
		utils.ResponseError(w, http.StatusUnprocessableEntity,
			"Cannot delete cinema room with existing reservations. Remove or reassign reservations first.")

	case errors.As(err, &validationErr):
		utils.ResponseValidation(w, validationErr.Messages())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
