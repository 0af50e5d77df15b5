package response

import "venue-booking/internal/data/entity"

// Status colors match the calendar front end: amber for pending requests,
// red for confirmed bookings, everything else (approved, rejected) invisible.
const (
	colorPending = "#fbbf24"
	colorBooked  = "#ef4444"
	colorNone    = "transparent"
)

// CalendarEventResponse is one all-day calendar entry per booking.
type CalendarEventResponse struct {
	Title  string               `json:"title"`
	Start  string               `json:"start"`
	End    string               `json:"end"`
	AllDay bool                 `json:"allDay"`
	Status entity.BookingStatus `json:"status"`
	Color  string               `json:"color"`
}

type DateAvailabilityResponse struct {
	Date         string              `json:"date"`
	Availability entity.Availability `json:"availability"`
}

func StatusColor(status entity.BookingStatus) string {
	switch status {
	case entity.BookingStatusPending:
		return colorPending
	case entity.BookingStatusBooked:
		return colorBooked
	default:
		return colorNone
	}
}

func BookingToCalendarEvent(b *entity.Booking) CalendarEventResponse {
	date := b.EventDate.Format(entity.DateKey)
	return CalendarEventResponse{
		Title:  string(b.Status),
		Start:  date,
		End:    date,
		AllDay: true,
		Status: b.Status,
		Color:  StatusColor(b.Status),
	}
}
