package entity

import "github.com/google/uuid"

// SamuhLaganRegistration is a couple's entry for the group-wedding
// ceremony. It shares the booking status workflow but has no per-date
// exclusivity: many couples share the same ceremony.
type SamuhLaganRegistration struct {
	Base
	Reference string    `db:"reference"`
	UserID    uuid.UUID `db:"user_id"`

	BrideName       string  `db:"bride_name"`
	BrideFatherName string  `db:"bride_father_name"`
	BrideMotherName string  `db:"bride_mother_name"`
	BrideAge        int     `db:"bride_age"`
	BrideMobile     string  `db:"bride_mobile"`
	BrideEmail      *string `db:"bride_email"`
	BrideAddress    string  `db:"bride_address"`
	BrideDocRef     string  `db:"bride_doc_ref"`

	GroomName       string  `db:"groom_name"`
	GroomFatherName string  `db:"groom_father_name"`
	GroomMotherName string  `db:"groom_mother_name"`
	GroomAge        int     `db:"groom_age"`
	GroomMobile     string  `db:"groom_mobile"`
	GroomEmail      *string `db:"groom_email"`
	GroomAddress    string  `db:"groom_address"`
	GroomDocRef     string  `db:"groom_doc_ref"`

	Status          BookingStatus `db:"status"`
	RejectionReason *string       `db:"rejection_reason"`
}
