package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The calendar and availability views are readable without login.
	r.Get("/api/bookings/calendar", bookingHandler.GetCalendar)
	r.Get("/api/bookings/availability", bookingHandler.GetAvailability)
	r.Get("/api/bookings/availability/{date}", bookingHandler.GetDateAvailability)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/bookings - Submit a booking request
		r.Post("/api/bookings", bookingHandler.SubmitBooking)

		// GET /api/user/bookings - View the user's own booking requests
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}/approve", bookingHandler.ApproveBooking)
		r.Put("/{id}/reject", bookingHandler.RejectBooking)
		r.Put("/{id}/confirm", bookingHandler.ConfirmBooking)
		r.Post("/{id}/payment", bookingHandler.RecordPayment)
	})
}
