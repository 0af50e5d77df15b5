package request

// SubmitBookingRequest carries the booking form. Dates are calendar dates
// ("2006-01-02"); times of day travel separately ("15:04").
type SubmitBookingRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required,min=7,max=20"`
	EventType       string  `json:"eventType" validate:"required,oneof=wedding corporate birthday social other"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string  `json:"startTime" validate:"required,datetime=15:04"`
	EndTime         string  `json:"endTime" validate:"required,datetime=15:04"`
	GuestCount      int     `json:"guestCount" validate:"required,gt=0"`
	EventDocument   *string `json:"eventDocument,omitempty"`
	AdditionalNotes *string `json:"additionalNotes,omitempty"`
}

type RejectBookingRequest struct {
	RejectionReason string `json:"rejectionReason" validate:"required,min=3"`
}

type RecordPaymentRequest struct {
	Amount     string  `json:"amount" validate:"required"`
	Method     string  `json:"method" validate:"required,oneof=cash transfer upi cheque"`
	Reference  *string `json:"reference,omitempty"`
	ReceivedAt string  `json:"receivedAt" validate:"required,datetime=2006-01-02"`
}
