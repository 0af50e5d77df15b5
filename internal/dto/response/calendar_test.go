package response

import (
	"testing"
	"time"

	"venue-booking/internal/data/entity"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status entity.BookingStatus
		want   string
	}{
		{entity.BookingStatusPending, "#fbbf24"},
		{entity.BookingStatusBooked, "#ef4444"},
		// Approved and rejected render on the calendar's transparent default.
		{entity.BookingStatusApproved, "transparent"},
		{entity.BookingStatusRejected, "transparent"},
	}

	for _, tt := range tests {
		if got := StatusColor(tt.status); got != tt.want {
			t.Fatalf("StatusColor(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestBookingToCalendarEvent(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	booking := &entity.Booking{
		EventDate: date,
		Status:    entity.BookingStatusBooked,
	}

	event := BookingToCalendarEvent(booking)

	if event.Start != "2026-09-15" || event.End != "2026-09-15" {
		t.Fatalf("expected all-day event on 2026-09-15, got %s..%s", event.Start, event.End)
	}
	if !event.AllDay {
		t.Fatalf("expected all-day event")
	}
	if event.Color != "#ef4444" {
		t.Fatalf("expected booked color, got %q", event.Color)
	}
	if event.Title != "Booked" {
		t.Fatalf("expected title Booked, got %q", event.Title)
	}
}
