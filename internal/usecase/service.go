package usecase

import (
	"venue-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking      BookingService
	SamuhLagan   SamuhLaganService
	StudentAward StudentAwardService
	Form         FormService
	Report       ReportService
	User         UserService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking:      NewBookingService(repo, log),
		SamuhLagan:   NewSamuhLaganService(repo, log),
		StudentAward: NewStudentAwardService(repo, log),
		Form:         NewFormService(repo.FormWindow, log),
		Report:       NewReportService(repo, log),
		User:         NewUserService(repo.User, log),
	}
}
