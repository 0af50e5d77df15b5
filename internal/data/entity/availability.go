package entity

import "time"

// Availability classifies a calendar date for rendering and for
// submission-time validation.
type Availability string

const (
	AvailabilityFree    Availability = "Free"
	AvailabilityPending Availability = "Pending"
	AvailabilityBooked  Availability = "Booked"
)

// DateKey is the calendar-date grouping key for bookings.
const DateKey = "2006-01-02"

// ClassifyDate returns the availability of a single date given the bookings
// held for it. Booked dominates Pending; rejected bookings are invisible.
// Pure function of the booking set.
func ClassifyDate(bookings []*Booking) Availability {
	result := AvailabilityFree
	for _, b := range bookings {
		if b.Status == BookingStatusBooked {
			return AvailabilityBooked
		}
		if !IsTerminalStatus(b.Status) {
			result = AvailabilityPending
		}
	}
	return result
}

// ClassifyByDate groups bookings by calendar date and classifies each date.
// Dates with no bookings are simply absent, i.e. Free.
func ClassifyByDate(bookings []*Booking) map[string]Availability {
	byDate := make(map[string][]*Booking)
	for _, b := range bookings {
		key := b.EventDate.Format(DateKey)
		byDate[key] = append(byDate[key], b)
	}

	result := make(map[string]Availability, len(byDate))
	for key, group := range byDate {
		result[key] = ClassifyDate(group)
	}
	return result
}

// SameCalendarDate reports whether two timestamps fall on the same date.
func SameCalendarDate(a, b time.Time) bool {
	return a.Format(DateKey) == b.Format(DateKey)
}
