package adaptor

import (
	"venue-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking      *BookingHandler
	SamuhLagan   *SamuhLaganHandler
	StudentAward *StudentAwardHandler
	Form         *FormHandler
	Report       *ReportHandler
	User         *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:      NewBookingHandler(service.Booking, log),
		SamuhLagan:   NewSamuhLaganHandler(service.SamuhLagan, log),
		StudentAward: NewStudentAwardHandler(service.StudentAward, log),
		Form:         NewFormHandler(service.Form, log),
		Report:       NewReportHandler(service.Report, log),
		User:         NewUserHandler(service.User, log),
	}
}
