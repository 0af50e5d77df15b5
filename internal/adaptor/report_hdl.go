package adaptor

import (
	"net/http"
	"time"

	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetBookingReport handles GET /api/admin/reports/bookings (admin only)
func (h *ReportHandler) GetBookingReport(w http.ResponseWriter, r *http.Request) {
	year := utils.ParseInt(r.URL.Query().Get("year"), time.Now().Year())

	report, err := h.service.GetBookingReport(r.Context(), year)
	if err != nil {
		h.log.Error("Failed to build booking report",
			zap.Error(err),
			zap.Int("year", year))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
