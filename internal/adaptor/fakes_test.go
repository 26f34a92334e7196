package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-rooms/internal/dto/request"
	"cinema-rooms/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// Service stubs driven by per-test function fields.

type stubRoomService struct {
	listFn       func(ctx context.Context) ([]response.RoomResponse, error)
	listPublicFn func(ctx context.Context) ([]response.PublicRoomResponse, error)
	getFn        func(ctx context.Context, id int64) (*response.RoomResponse, error)
	createFn     func(ctx context.Context, req *request.RoomCreateRequest) (*response.RoomResponse, error)
	updateFn     func(ctx context.Context, id int64, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (s *stubRoomService) ListRooms(ctx context.Context) ([]response.RoomResponse, error) {
	return s.listFn(ctx)
}

func (s *stubRoomService) ListPublicRooms(ctx context.Context) ([]response.PublicRoomResponse, error) {
	return s.listPublicFn(ctx)
}

func (s *stubRoomService) GetRoom(ctx context.Context, id int64) (*response.RoomResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubRoomService) CreateRoom(ctx context.Context, req *request.RoomCreateRequest) (*response.RoomResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubRoomService) UpdateRoom(ctx context.Context, id int64, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubRoomService) DeleteRoom(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubBookingService struct {
	createFn func(ctx context.Context, req *request.ReservationRequest) ([]response.ReservationResponse, error)
}

func (s *stubBookingService) CreateReservations(ctx context.Context, req *request.ReservationRequest) ([]response.ReservationResponse, error) {
	return s.createFn(ctx, req)
}

func newJSONRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func fieldMessages(t *testing.T, body map[string]any, field string) []any {
	t.Helper()
	require.Equal(t, "Validation failed", body["error"])
	messages, ok := body["messages"].(map[string]any)
	require.True(t, ok, "messages object present")
	list, ok := messages[field].([]any)
	require.True(t, ok, "messages for %q present", field)
	return list
}
