package response

// BookingReportResponse is the admin aggregate view over the booking
// collection. Month counts are keyed 1-12 for the requested year.
type BookingReportResponse struct {
	Year         int              `json:"year"`
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"byStatus"`
	ByEventType  map[string]int64 `json:"byEventType"`
	ByMonth      map[int]int64    `json:"byMonth"`
	SamuhLagan   int64            `json:"samuhLaganRegistrations"`
	StudentAward int64            `json:"studentAwardRegistrations"`
}
