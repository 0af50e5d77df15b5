package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public read side
	GetCalendar(ctx context.Context, from, to time.Time) ([]response.CalendarEventResponse, error)
	GetAvailability(ctx context.Context, from, to time.Time) ([]response.DateAvailabilityResponse, error)
	GetDateAvailability(ctx context.Context, date time.Time) (entity.Availability, error)

	// Authenticated users
	SubmitBooking(ctx context.Context, userID string, req *request.SubmitBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// Admin workflow
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ApproveBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	RejectBooking(ctx context.Context, bookingID string, req *request.RejectBookingRequest) (*response.BookingResponse, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	RecordPayment(ctx context.Context, adminID, bookingID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetCalendar(ctx context.Context, from, to time.Time) ([]response.CalendarEventResponse, error) {
	bookings, err := s.repo.Booking.FindByDateRange(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to load calendar bookings", zap.Error(err))
		return nil, fmt.Errorf("load calendar bookings: %w", err)
	}

	events := make([]response.CalendarEventResponse, 0, len(bookings))
	for _, b := range bookings {
		events = append(events, response.BookingToCalendarEvent(b))
	}

	return events, nil
}

func (s *bookingService) GetAvailability(ctx context.Context, from, to time.Time) ([]response.DateAvailabilityResponse, error) {
	bookings, err := s.repo.Booking.FindByDateRange(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to load bookings for availability", zap.Error(err))
		return nil, fmt.Errorf("load bookings for availability: %w", err)
	}

	classified := entity.ClassifyByDate(bookings)

	result := make([]response.DateAvailabilityResponse, 0, len(classified))
	for date, availability := range classified {
		result = append(result, response.DateAvailabilityResponse{
			Date:         date,
			Availability: availability,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })

	return result, nil
}

func (s *bookingService) GetDateAvailability(ctx context.Context, date time.Time) (entity.Availability, error) {
	bookings, err := s.repo.Booking.FindByDateRange(ctx, date, date.AddDate(0, 0, 1))
	if err != nil {
		s.log.Error("Failed to load bookings for date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return "", fmt.Errorf("load bookings for date: %w", err)
	}

	return entity.ClassifyDate(bookings), nil
}

func (s *bookingService) SubmitBooking(ctx context.Context, userID string, req *request.SubmitBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	eventDate, err := time.Parse(entity.DateKey, req.Date)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid date %s", req.Date)
	}

	if req.Date < time.Now().Format(entity.DateKey) {
		return nil, fmt.Errorf("validation failed: event date %s is in the past", req.Date)
	}

	// Pre-check for a friendlier error; the insert below is the
	// authoritative check, so a race here is still closed.
	booked, err := s.repo.Booking.ExistsBookedOnDate(ctx, eventDate)
	if err != nil {
		return nil, fmt.Errorf("check date availability: %w", err)
	}
	if booked {
		return nil, fmt.Errorf("submit booking for %s: %w", req.Date, entity.ErrDateConflict)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:       utils.GenerateReference("EVT"),
		UserID:          userUUID,
		RequesterName:   req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		EventType:       entity.EventType(req.EventType),
		EventDate:       eventDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		GuestCount:      req.GuestCount,
		DocumentRef:     req.EventDocument,
		AdditionalNotes: req.AdditionalNotes,
		Status:          entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("date", req.Date),
		)
		return nil, err
	}

	s.log.Info("Booking submitted",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("user_id", userID),
		zap.String("date", req.Date),
		zap.Int("guest_count", req.GuestCount),
	)

	resp := response.BookingToResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("load payment for booking %s: %w", bookingID, err)
	}

	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(booking.Status, entity.BookingStatusApproved) {
		return nil, fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, entity.ErrInvalidTransition)
	}

	// Compare-and-set against the status we read; another admin winning the
	// race surfaces as ErrInvalidTransition from the store.
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, booking.Status, entity.BookingStatusApproved, nil); err != nil {
		return nil, err
	}

	s.log.Info("Booking approved",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
	)

	return s.GetBookingByID(ctx, bookingID)
}

func (s *bookingService) RejectBooking(ctx context.Context, bookingID string, req *request.RejectBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reject booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(booking.Status, entity.BookingStatusRejected) {
		return nil, fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, entity.ErrInvalidTransition)
	}

	reason := req.RejectionReason
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, booking.Status, entity.BookingStatusRejected, &reason); err != nil {
		return nil, err
	}

	s.log.Info("Booking rejected",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
		zap.String("reason", reason),
	)

	return s.GetBookingByID(ctx, bookingID)
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(booking.Status, entity.BookingStatusBooked) {
		return nil, fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, entity.ErrInvalidTransition)
	}

	// The store re-validates date uniqueness inside the update; two
	// independently approved bookings for one date cannot both land here.
	if err := s.repo.Booking.Confirm(ctx, booking.ID); err != nil {
		return nil, err
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
		zap.String("date", booking.EventDate.Format(entity.DateKey)),
	)

	return s.GetBookingByID(ctx, bookingID)
}

func (s *bookingService) RecordPayment(ctx context.Context, adminID, bookingID string, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID format %s: %w", adminID, err)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusApproved && booking.Status != entity.BookingStatusBooked {
		return nil, fmt.Errorf("booking %s is %s, cannot record payment", bookingID, booking.Status)
	}

	existing, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("payment already recorded for booking %s", bookingID)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("validation failed: invalid amount %s", req.Amount)
	}

	receivedAt, err := time.Parse(entity.DateKey, req.ReceivedAt)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid received date %s", req.ReceivedAt)
	}

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:  booking.ID,
		Amount:     amount,
		Method:     entity.PaymentMethod(req.Method),
		Reference:  req.Reference,
		ReceivedAt: receivedAt,
		RecordedBy: adminUUID,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", bookingID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("method", req.Method),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// ==================== HELPERS ====================

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	return booking, nil
}

// toResponses attaches payments to a page of bookings. One payment lookup
// per row; page size is capped at 100.
func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		payment, err := s.repo.Payment.FindByBookingID(ctx, b.ID)
		if err != nil {
			// Keep the listing usable; the booking renders without its payment.
			s.log.Warn("Failed to load payment for booking",
				zap.Error(err),
				zap.String("booking_id", b.ID.String()),
			)
		}
		responses[i] = response.BookingToResponse(b, payment)
	}
	return responses
}
