package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StudentAwardHandler struct {
	service usecase.StudentAwardService
	log     *zap.Logger
}

func NewStudentAwardHandler(service usecase.StudentAwardService, log *zap.Logger) *StudentAwardHandler {
	return &StudentAwardHandler{
		service: service,
		log:     log.With(zap.String("handler", "student_award")),
	}
}

// Submit handles POST /api/student-awards (protected)
func (h *StudentAwardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.StudentAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	registration, err := h.service.Submit(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit student award registration")
		return
	}

	utils.ResponseCreated(w, "success", registration)
}

// ==================== ADMIN METHODS ====================

// List handles GET /api/admin/student-awards (admin only)
func (h *StudentAwardHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	registrations, err := h.service.List(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list student award registrations")
		return
	}

	utils.ResponseSuccess(w, "success", registrations)
}

// GetByID handles GET /api/admin/student-awards/{id} (admin only)
func (h *StudentAwardHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "id")
	if registrationID == "" {
		utils.ResponseBadRequest(w, "Registration ID is required", nil)
		return
	}

	registration, err := h.service.GetByID(r.Context(), registrationID)
	if err != nil {
		h.handleServiceError(w, err, "get student award registration")
		return
	}

	utils.ResponseSuccess(w, "success", registration)
}

// Approve handles PUT /api/admin/student-awards/{id}/approve (admin only)
func (h *StudentAwardHandler) Approve(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "id")
	if registrationID == "" {
		utils.ResponseBadRequest(w, "Registration ID is required", nil)
		return
	}

	registration, err := h.service.Approve(r.Context(), registrationID)
	if err != nil {
		h.handleServiceError(w, err, "approve student award registration")
		return
	}

	utils.ResponseSuccess(w, "success", registration)
}

// Reject handles PUT /api/admin/student-awards/{id}/reject (admin only)
func (h *StudentAwardHandler) Reject(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "id")
	if registrationID == "" {
		utils.ResponseBadRequest(w, "Registration ID is required", nil)
		return
	}

	var req request.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	registration, err := h.service.Reject(r.Context(), registrationID, &req)
	if err != nil {
		h.handleServiceError(w, err, "reject student award registration")
		return
	}

	utils.ResponseSuccess(w, "success", registration)
}

func (h *StudentAwardHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, entity.ErrFormClosed):
		h.log.Warn(operation+" failed - form closed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

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

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
