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

type SamuhLaganHandler struct {
	service usecase.SamuhLaganService
	log     *zap.Logger
}

func NewSamuhLaganHandler(service usecase.SamuhLaganService, log *zap.Logger) *SamuhLaganHandler {
	return &SamuhLaganHandler{
		service: service,
		log:     log.With(zap.String("handler", "samuh_lagan")),
	}
}

// Submit handles POST /api/samuh-lagan (protected)
func (h *SamuhLaganHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SamuhLaganRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	registration, err := h.service.Submit(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit samuh lagan registration")
		return
	}

	utils.ResponseCreated(w, "success", registration)
}

// GetUserRegistrations handles GET /api/user/samuh-lagan (protected)
func (h *SamuhLaganHandler) GetUserRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	registrations, err := h.service.GetUserRegistrations(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get user samuh lagan registrations")
		return
	}

	utils.ResponseSuccess(w, "success", registrations)
}

// ==================== ADMIN METHODS ====================

// List handles GET /api/admin/samuh-lagan (admin only)
func (h *SamuhLaganHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	registrations, err := h.service.List(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list samuh lagan registrations")
		return
	}

	utils.ResponseSuccess(w, "success", registrations)
}

// GetByID handles GET /api/admin/samuh-lagan/{id} (admin only)
func (h *SamuhLaganHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "id")
	if registrationID == "" {
		utils.ResponseBadRequest(w, "Registration ID is required", nil)
		return
	}

	registration, err := h.service.GetByID(r.Context(), registrationID)
	if err != nil {
		h.handleServiceError(w, err, "get samuh lagan registration")
		return
	}

	utils.ResponseSuccess(w, "success", registration)
}

// Approve handles PUT /api/admin/samuh-lagan/{id}/approve (admin only)
func (h *SamuhLaganHandler) Approve(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "id")
	if registrationID == "" {
		utils.ResponseBadRequest(w, "Registration ID is required", nil)
		return
	}

	registration, err := h.service.Approve(r.Context(), registrationID)
	if err != nil {
		h.handleServiceError(w, err, "approve samuh lagan registration")
		return
	}

	utils.ResponseSuccess(w, "success", registration)
}

// Reject handles PUT /api/admin/samuh-lagan/{id}/reject (admin only)
func (h *SamuhLaganHandler) Reject(w http.ResponseWriter, r *http.Request) {
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
		h.handleServiceError(w, err, "reject samuh lagan registration")
		return
	}

	utils.ResponseSuccess(w, "success", registration)
}

// Confirm handles PUT /api/admin/samuh-lagan/{id}/confirm (admin only)
func (h *SamuhLaganHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "id")
	if registrationID == "" {
		utils.ResponseBadRequest(w, "Registration ID is required", nil)
		return
	}

	registration, err := h.service.Confirm(r.Context(), registrationID)
	if err != nil {
		h.handleServiceError(w, err, "confirm samuh lagan registration")
		return
	}

	utils.ResponseSuccess(w, "success", registration)
}

func (h *SamuhLaganHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
