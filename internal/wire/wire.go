package wire

import (
	"net/http"
	"time"

	"cinema-rooms/internal/adaptor"
	"cinema-rooms/internal/data/repository"
	"cinema-rooms/internal/usecase"
	"cinema-rooms/pkg/middleware"
	"cinema-rooms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireRoom(r, handler.Room, config, logger)
	wireReservation(r, handler.Reservation)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	return r
}
