package entity

import "errors"

var (
	// ErrDateConflict means the target date already holds a confirmed
	// booking. Returned from the store's conditional writes, not from
	// client-side pre-checks alone.
	ErrDateConflict = errors.New("date already booked")

	// ErrInvalidTransition means a status change was attempted that the
	// transition table does not allow, usually because another admin
	// acted first and the caller holds stale state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrFormClosed means a registration form has no currently open window.
	ErrFormClosed = errors.New("registration form is closed")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)
