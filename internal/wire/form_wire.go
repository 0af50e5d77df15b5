package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireForm configures the registration form window routes
func wireForm(
	r chi.Router,
	handler *adaptor.FormHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/forms - List form windows and whether they are open
	r.Get("/api/forms", handler.GetForms)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/forms", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Put("/{type}", handler.SetWindow)
		r.Delete("/{type}", handler.Deactivate)
	})
}
