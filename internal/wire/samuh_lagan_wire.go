package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSamuhLagan(
	r chi.Router,
	handler *adaptor.SamuhLaganHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/samuh-lagan - Register a couple (only while the form is open)
		r.Post("/api/samuh-lagan", handler.Submit)

		// GET /api/user/samuh-lagan - View the user's own registrations
		r.Get("/api/user/samuh-lagan", handler.GetUserRegistrations)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/samuh-lagan", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", handler.List)
		r.Get("/{id}", handler.GetByID)
		r.Put("/{id}/approve", handler.Approve)
		r.Put("/{id}/reject", handler.Reject)
		r.Put("/{id}/confirm", handler.Confirm)
	})
}
