package entity

import "time"

type FormType string

const (
	FormTypeSamuhLagan   FormType = "samuh_lagan"
	FormTypeStudentAward FormType = "student_award"
)

func ParseFormType(s string) (FormType, error) {
	switch FormType(s) {
	case FormTypeSamuhLagan, FormTypeStudentAward:
		return FormType(s), nil
	default:
		return "", ErrNotFound
	}
}

// FormWindow is the admin-managed acceptance window for a registration
// form. Submissions are only accepted while the window is active and the
// current time falls inside it.
type FormWindow struct {
	Base
	FormType FormType  `db:"form_type"`
	Active   bool      `db:"active"`
	OpensAt  time.Time `db:"opens_at"`
	ClosesAt time.Time `db:"closes_at"`
}

// IsOpen reports whether the window accepts submissions at the given time.
func (f *FormWindow) IsOpen(now time.Time) bool {
	if f == nil || !f.Active {
		return false
	}
	return !now.Before(f.OpensAt) && now.Before(f.ClosesAt)
}
