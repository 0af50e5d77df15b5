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

type FormHandler struct {
	service usecase.FormService
	log     *zap.Logger
}

func NewFormHandler(service usecase.FormService, log *zap.Logger) *FormHandler {
	return &FormHandler{
		service: service,
		log:     log.With(zap.String("handler", "form")),
	}
}

// GetForms handles GET /api/forms (public). The front end uses this to
// decide whether the registration forms are shown as open.
func (h *FormHandler) GetForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.service.GetForms(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get forms")
		return
	}

	utils.ResponseSuccess(w, "success", forms)
}

// SetWindow handles PUT /api/admin/forms/{type} (admin only)
func (h *FormHandler) SetWindow(w http.ResponseWriter, r *http.Request) {
	formType := chi.URLParam(r, "type")
	if formType == "" {
		utils.ResponseBadRequest(w, "Form type is required", nil)
		return
	}

	var req request.SetFormWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	form, err := h.service.SetWindow(r.Context(), formType, &req)
	if err != nil {
		h.handleServiceError(w, err, "set form window")
		return
	}

	utils.ResponseSuccess(w, "success", form)
}

// Deactivate handles DELETE /api/admin/forms/{type} (admin only)
func (h *FormHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	formType := chi.URLParam(r, "type")
	if formType == "" {
		utils.ResponseBadRequest(w, "Form type is required", nil)
		return
	}

	if err := h.service.Deactivate(r.Context(), formType); err != nil {
		h.handleServiceError(w, err, "deactivate form window")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *FormHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
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

	case strings.Contains(errMsg, "must"):
		h.log.Warn(operation+" failed - bad window",
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
