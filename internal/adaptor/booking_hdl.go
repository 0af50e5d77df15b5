package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// parseDateRange reads from/to query params; defaults to the three
// months starting today, which is what the calendar view asks for.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 3, 0)

	query := r.URL.Query()
	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(entity.DateKey, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(entity.DateKey, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}

// GetCalendar handles GET /api/bookings/calendar (public)
func (h *BookingHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid date format. Use: YYYY-MM-DD", nil)
		return
	}

	events, err := h.service.GetCalendar(r.Context(), from, to)
	if err != nil {
		h.handleServiceError(w, err, "get calendar")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// GetAvailability handles GET /api/bookings/availability (public)
func (h *BookingHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid date format. Use: YYYY-MM-DD", nil)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), from, to)
	if err != nil {
		h.handleServiceError(w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// GetDateAvailability handles GET /api/bookings/availability/{date} (public)
func (h *BookingHandler) GetDateAvailability(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "date")
	date, err := time.Parse(entity.DateKey, raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid date format. Use: YYYY-MM-DD", nil)
		return
	}

	availability, err := h.service.GetDateAvailability(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err, "get date availability")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]string{
		"date":   date.Format(entity.DateKey),
		"status": string(availability),
	})
}

// SubmitBooking handles POST /api/bookings (protected)
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.SubmitBooking(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ==================== ADMIN METHODS ====================

// ListBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/admin/bookings/{id} (admin only)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ApproveBooking handles PUT /api/admin/bookings/{id}/approve (admin only)
func (h *BookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.ApproveBooking(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "approve booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// RejectBooking handles PUT /api/admin/bookings/{id}/reject (admin only)
func (h *BookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.RejectBooking(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "reject booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ConfirmBooking handles PUT /api/admin/bookings/{id}/confirm (admin only)
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.ConfirmBooking(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "confirm booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// RecordPayment handles POST /api/admin/bookings/{id}/payment (admin only)
func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), adminID.String(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// handleServiceError maps service errors onto HTTP responses
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, entity.ErrDateConflict):
		h.log.Warn(operation+" failed - date conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, entity.ErrInvalidTransition):
		h.log.Warn(operation+" failed - invalid transition",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, entity.ErrNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
