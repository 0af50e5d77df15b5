package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	handler *adaptor.ReportHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Admin(repo.User, log),
	).Get("/api/admin/reports/bookings", handler.GetBookingReport)
}
