package entity

import (
	"testing"
	"time"
)

func bookingOn(date string, status BookingStatus) *Booking {
	d, _ := time.Parse(DateKey, date)
	return &Booking{EventDate: d, Status: status}
}

func TestClassifyDate(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*Booking
		want     Availability
	}{
		{"no bookings", nil, AvailabilityFree},
		{"single pending", []*Booking{bookingOn("2026-09-01", BookingStatusPending)}, AvailabilityPending},
		{"single approved", []*Booking{bookingOn("2026-09-01", BookingStatusApproved)}, AvailabilityPending},
		{"single booked", []*Booking{bookingOn("2026-09-01", BookingStatusBooked)}, AvailabilityBooked},
		{"rejected only is free", []*Booking{bookingOn("2026-09-01", BookingStatusRejected)}, AvailabilityFree},
		{
			"booked dominates pending",
			[]*Booking{
				bookingOn("2026-09-01", BookingStatusPending),
				bookingOn("2026-09-01", BookingStatusBooked),
				bookingOn("2026-09-01", BookingStatusApproved),
			},
			AvailabilityBooked,
		},
		{
			"rejected does not mask pending",
			[]*Booking{
				bookingOn("2026-09-01", BookingStatusRejected),
				bookingOn("2026-09-01", BookingStatusPending),
			},
			AvailabilityPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDate(tt.bookings); got != tt.want {
				t.Fatalf("ClassifyDate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyByDate(t *testing.T) {
	bookings := []*Booking{
		bookingOn("2026-09-01", BookingStatusBooked),
		bookingOn("2026-09-01", BookingStatusRejected),
		bookingOn("2026-09-02", BookingStatusPending),
		bookingOn("2026-09-03", BookingStatusRejected),
	}

	got := ClassifyByDate(bookings)

	if got["2026-09-01"] != AvailabilityBooked {
		t.Fatalf("expected 2026-09-01 booked, got %s", got["2026-09-01"])
	}
	if got["2026-09-02"] != AvailabilityPending {
		t.Fatalf("expected 2026-09-02 pending, got %s", got["2026-09-02"])
	}
	if got["2026-09-03"] != AvailabilityFree {
		t.Fatalf("expected 2026-09-03 free, got %s", got["2026-09-03"])
	}
	if _, ok := got["2026-09-04"]; ok {
		t.Fatalf("did not expect an entry for a date with no bookings")
	}
}

func TestSameCalendarDate(t *testing.T) {
	a := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	b := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)
	c := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	if !SameCalendarDate(a, b) {
		t.Fatalf("expected same date for different times of day")
	}
	if SameCalendarDate(b, c) {
		t.Fatalf("expected different dates across midnight")
	}
}
