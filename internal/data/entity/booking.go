package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus values are wire-compatible with the calendar front end.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
	BookingStatusBooked   BookingStatus = "Booked"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected, BookingStatusBooked:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// allowedTransitions is the whole workflow: transitions are forward-only,
// Rejected and Booked are terminal.
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusPending:  {BookingStatusApproved: true, BookingStatusRejected: true},
	BookingStatusApproved: {BookingStatusBooked: true, BookingStatusRejected: true},
	BookingStatusRejected: {},
	BookingStatusBooked:   {},
}

func CanTransition(from, to BookingStatus) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

func IsTerminalStatus(s BookingStatus) bool {
	return len(allowedTransitions[s]) == 0
}

type EventType string

const (
	EventTypeWedding   EventType = "wedding"
	EventTypeCorporate EventType = "corporate"
	EventTypeBirthday  EventType = "birthday"
	EventTypeSocial    EventType = "social"
	EventTypeOther     EventType = "other"
)

type Booking struct {
	Base
	Reference       string        `db:"reference"`
	UserID          uuid.UUID     `db:"user_id"`
	RequesterName   string        `db:"requester_name"`
	Email           string        `db:"email"`
	Phone           string        `db:"phone"`
	EventType       EventType     `db:"event_type"`
	EventDate       time.Time     `db:"event_date"`
	StartTime       string        `db:"start_time"`
	EndTime         string        `db:"end_time"`
	GuestCount      int           `db:"guest_count"`
	DocumentRef     *string       `db:"document_ref"`
	AdditionalNotes *string       `db:"additional_notes"`
	Status          BookingStatus `db:"status"`
	RejectionReason *string       `db:"rejection_reason"`
}
