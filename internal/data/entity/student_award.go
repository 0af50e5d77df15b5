package entity

import "github.com/google/uuid"

// StudentAwardRegistration follows the Pending/Approved/Rejected slice of
// the workflow; awards are never "Booked".
type StudentAwardRegistration struct {
	Base
	Reference       string        `db:"reference"`
	UserID          uuid.UUID     `db:"user_id"`
	StudentName     string        `db:"student_name"`
	ParentName      string        `db:"parent_name"`
	School          string        `db:"school"`
	Grade           string        `db:"grade"`
	Email           string        `db:"email"`
	Phone           string        `db:"phone"`
	AwardCategory   string        `db:"award_category"`
	MarksheetRef    string        `db:"marksheet_ref"`
	Status          BookingStatus `db:"status"`
	RejectionReason *string       `db:"rejection_reason"`
}
