package wire

import (
	"cinema-rooms/internal/adaptor"
	"cinema-rooms/pkg/middleware"
	"cinema-rooms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public listing with reserved seats, no credential required.
	r.Get("/api/public/cinema-rooms", roomHandler.ListPublicRooms)

	// Room management requires a bearer token; the group boundary is the
	// authorization table.
	r.Route("/api/cinema-rooms", func(r chi.Router) {
		r.Use(middleware.RequireJWT(config.JWT.Secret, log))

		r.Get("/", roomHandler.ListRooms)
		r.Get("/{id:[0-9]+}", roomHandler.GetRoom)
		r.Post("/", roomHandler.CreateRoom)
		r.Put("/{id:[0-9]+}", roomHandler.UpdateRoom)
		r.Patch("/{id:[0-9]+}", roomHandler.UpdateRoom)
		r.Delete("/{id:[0-9]+}", roomHandler.DeleteRoom)
	})
}
