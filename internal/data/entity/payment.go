package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodUPI      PaymentMethod = "upi"
	PaymentMethodCheque   PaymentMethod = "cheque"
)

// Payment records money received against a booking, entered by an admin
// before the booking is confirmed. At most one payment per booking.
type Payment struct {
	BaseSimple
	BookingID  uuid.UUID       `db:"booking_id"`
	Amount     decimal.Decimal `db:"amount"`
	Method     PaymentMethod   `db:"method"`
	Reference  *string         `db:"reference"`
	ReceivedAt time.Time       `db:"received_at"`
	RecordedBy uuid.UUID       `db:"recorded_by"`
}
