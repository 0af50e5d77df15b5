package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	Reference       string               `json:"reference"`
	UserID          string               `json:"userId"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	EventType       entity.EventType     `json:"eventType"`
	Date            string               `json:"date"`
	StartTime       string               `json:"startTime"`
	EndTime         string               `json:"endTime"`
	GuestCount      int                  `json:"guestCount"`
	EventDocument   *string              `json:"eventDocument,omitempty"`
	AdditionalNotes *string              `json:"additionalNotes,omitempty"`
	Status          entity.BookingStatus `json:"status"`
	RejectionReason *string              `json:"rejectionReason,omitempty"`
	Payment         *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type PaymentResponse struct {
	ID         string               `json:"id"`
	BookingID  string               `json:"bookingId"`
	Amount     string               `json:"amount"`
	Method     entity.PaymentMethod `json:"method"`
	Reference  *string              `json:"reference,omitempty"`
	ReceivedAt string               `json:"receivedAt"`
	CreatedAt  time.Time            `json:"createdAt"`
}

func BookingToResponse(b *entity.Booking, payment *entity.Payment) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID.String(),
		Reference:       b.Reference,
		UserID:          b.UserID.String(),
		Name:            b.RequesterName,
		Email:           b.Email,
		Phone:           b.Phone,
		EventType:       b.EventType,
		Date:            b.EventDate.Format(entity.DateKey),
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		GuestCount:      b.GuestCount,
		EventDocument:   b.DocumentRef,
		AdditionalNotes: b.AdditionalNotes,
		Status:          b.Status,
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if payment != nil {
		paymentResp := PaymentToResponse(payment)
		resp.Payment = &paymentResp
	}

	return resp
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID.String(),
		BookingID:  p.BookingID.String(),
		Amount:     p.Amount.StringFixed(2),
		Method:     p.Method,
		Reference:  p.Reference,
		ReceivedAt: p.ReceivedAt.Format(entity.DateKey),
		CreatedAt:  p.CreatedAt,
	}
}
