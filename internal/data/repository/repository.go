package repository

import (
	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Booking      BookingRepository
	Payment      PaymentRepository
	SamuhLagan   SamuhLaganRepository
	StudentAward StudentAwardRepository
	FormWindow   FormWindowRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		SamuhLagan:   NewSamuhLaganRepository(db, log),
		StudentAward: NewStudentAwardRepository(db, log),
		FormWindow:   NewFormWindowRepository(db, log),
	}
}
