// internal/wire/wire.go
package wire

import (
	"net/http"

	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router from the repositories.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router and route groups
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireBooking(r, handler.Booking, repo, config, logger)
	wireSamuhLagan(r, handler.SamuhLagan, repo, config, logger)
	wireStudentAward(r, handler.StudentAward, repo, config, logger)
	wireForm(r, handler.Form, repo, config, logger)
	wireReport(r, handler.Report, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
