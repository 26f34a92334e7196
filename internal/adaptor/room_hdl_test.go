package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-rooms/internal/dto/request"
	"cinema-rooms/internal/dto/response"
	"cinema-rooms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRoom() *response.RoomResponse {
	return &response.RoomResponse{
		ID:            7,
		Rows:          5,
		Columns:       10,
		Movie:         "Inception",
		Creation:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Updated:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		MovieDatetime: time.Date(2026, 12, 24, 20, 0, 0, 0, time.UTC),
	}
}

func TestGetRoom(t *testing.T) {
	svc := &stubRoomService{
		getFn: func(_ context.Context, id int64) (*response.RoomResponse, error) {
			require.Equal(t, int64(7), id)
			return sampleRoom(), nil
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/cinema-rooms/7", nil), "id", "7")
	rec := httptest.NewRecorder()
	h.GetRoom(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "Inception", data["movie"])
	assert.Equal(t, float64(5), data["rows"])
}

func TestGetRoomNotFound(t *testing.T) {
	svc := &stubRoomService{
		getFn: func(context.Context, int64) (*response.RoomResponse, error) {
			return nil, usecase.ErrRoomNotFound
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/cinema-rooms/42", nil), "id", "42")
	rec := httptest.NewRecorder()
	h.GetRoom(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cinema room not found.", decodeBody(t, rec)["error"])
}

func TestGetRoomBadID(t *testing.T) {
	svc := &stubRoomService{
		getFn: func(context.Context, int64) (*response.RoomResponse, error) {
			t.Fatal("service must not be called for an unparseable id")
			return nil, nil
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/cinema-rooms/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()
	h.GetRoom(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cinema room not found.", decodeBody(t, rec)["error"])
}

func TestCreateRoom(t *testing.T) {
	svc := &stubRoomService{
		createFn: func(_ context.Context, req *request.RoomCreateRequest) (*response.RoomResponse, error) {
			assert.Equal(t, 5, req.Rows)
			assert.Equal(t, 10, req.Columns)
			assert.Equal(t, "Inception", req.Movie)
			return sampleRoom(), nil
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	req := newJSONRequest(t, http.MethodPost, "/api/cinema-rooms",
		`{"rows":5,"columns":10,"movie":"  Inception  ","movieDatetime":"2026-12-24T20:00:00Z"}`)
	rec := httptest.NewRecorder()
	h.CreateRoom(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	data, ok := decodeBody(t, rec)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), data["id"])
}

func TestCreateRoomInvalidBody(t *testing.T) {
	h := NewRoomHandler(&stubRoomService{}, zap.NewNop())

	req := newJSONRequest(t, http.MethodPost, "/api/cinema-rooms", `{"rows": 5,`)
	rec := httptest.NewRecorder()
	h.CreateRoom(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body.", decodeBody(t, rec)["error"])
}

func TestCreateRoomValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing rows", `{"columns":10,"movieDatetime":"2026-12-24T20:00:00Z"}`, "rows"},
		{"rows above cap", `{"rows":300,"columns":10,"movieDatetime":"2026-12-24T20:00:00Z"}`, "rows"},
		{"missing datetime", `{"rows":5,"columns":10}`, "movieDatetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRoomHandler(&stubRoomService{}, zap.NewNop())

			req := newJSONRequest(t, http.MethodPost, "/api/cinema-rooms", tt.body)
			rec := httptest.NewRecorder()
			h.CreateRoom(rec, req)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.NotEmpty(t, fieldMessages(t, decodeBody(t, rec), tt.field))
		})
	}
}

func TestUpdateRoomDimensionConflict(t *testing.T) {
	svc := &stubRoomService{
		updateFn: func(context.Context, int64, *request.RoomUpdateRequest) (*response.RoomResponse, error) {
			return nil, &usecase.ValidationError{Violations: []usecase.Violation{{
				Path:    "rows",
				Message: "Cannot set rows to 2: reservation(s) exist at row(s) beyond this limit.",
			}}}
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	req := withURLParam(newJSONRequest(t, http.MethodPut, "/api/cinema-rooms/7", `{"rows":2}`), "id", "7")
	rec := httptest.NewRecorder()
	h.UpdateRoom(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	list := fieldMessages(t, decodeBody(t, rec), "rows")
	assert.Equal(t, []any{"Cannot set rows to 2: reservation(s) exist at row(s) beyond this limit."}, list)
}

func TestDeleteRoom(t *testing.T) {
	svc := &stubRoomService{
		deleteFn: func(_ context.Context, id int64) error {
			require.Equal(t, int64(7), id)
			return nil
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/cinema-rooms/7", nil), "id", "7")
	rec := httptest.NewRecorder()
	h.DeleteRoom(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteRoomWithReservations(t *testing.T) {
	svc := &stubRoomService{
		deleteFn: func(context.Context, int64) error {
			return usecase.ErrRoomHasReservations
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/cinema-rooms/7", nil), "id", "7")
	rec := httptest.NewRecorder()
	h.DeleteRoom(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t,
		"Cannot delete cinema room with existing reservations. Remove or reassign reservations first.",
		decodeBody(t, rec)["error"])
}

func TestListRoomsInternalError(t *testing.T) {
	svc := &stubRoomService{
		listFn: func(context.Context) ([]response.RoomResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ListRooms(rec, httptest.NewRequest(http.MethodGet, "/api/cinema-rooms", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, rec)["error"])
}

func TestListPublicRooms(t *testing.T) {
	svc := &stubRoomService{
		listPublicFn: func(context.Context) ([]response.PublicRoomResponse, error) {
			return []response.PublicRoomResponse{{
				ID:      1,
				Rows:    5,
				Columns: 10,
				Movie:   "Alien",
				ReservedSeats: []response.ReservedSeatResponse{
					{Row: 2, Column: 3, ReservedByName: "Jane"},
				},
			}}, nil
		},
	}
	h := NewRoomHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ListPublicRooms(rec, httptest.NewRequest(http.MethodGet, "/api/public/cinema-rooms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeBody(t, rec)["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	room := data[0].(map[string]any)
	seats := room["reservedSeats"].([]any)
	require.Len(t, seats, 1)
	assert.Equal(t, "Jane", seats[0].(map[string]any)["reservedByName"])
}
