package request

// SetFormWindowRequest opens (or reschedules) a registration window.
// Timestamps are RFC 3339.
type SetFormWindowRequest struct {
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}
