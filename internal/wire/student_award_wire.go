package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStudentAward(
	r chi.Router,
	handler *adaptor.StudentAwardHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// POST /api/student-awards - Register a student (only while the form is open)
	r.With(middleware.Auth(config.JWT.Secret, log)).Post("/api/student-awards", handler.Submit)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/student-awards", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", handler.List)
		r.Get("/{id}", handler.GetByID)
		r.Put("/{id}/approve", handler.Approve)
		r.Put("/{id}/reject", handler.Reject)
	})
}
