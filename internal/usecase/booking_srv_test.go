package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeBookingRepo keeps bookings in memory with the same conditional-write
// semantics the SQL layer provides.
type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) bookedOn(date time.Time, exclude uuid.UUID) bool {
	for _, b := range f.bookings {
		if b.ID != exclude && b.Status == entity.BookingStatusBooked && entity.SameCalendarDate(b.EventDate, date) {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.bookedOn(booking.EventDate, booking.ID) {
		return entity.ErrDateConflict
	}
	clone := *booking
	f.bookings[booking.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, b := range f.bookings {
		clone := *b
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			clone := *b
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) FindByDateRange(_ context.Context, from, to time.Time) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, b := range f.bookings {
		if !b.EventDate.Before(from) && b.EventDate.Before(to) {
			clone := *b
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) ExistsBookedOnDate(_ context.Context, date time.Time) (bool, error) {
	return f.bookedOn(date, uuid.Nil), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.BookingStatus, rejectionReason *string) error {
	b, ok := f.bookings[id]
	if !ok {
		return entity.ErrNotFound
	}
	if b.Status != from {
		return entity.ErrInvalidTransition
	}
	b.Status = to
	b.RejectionReason = rejectionReason
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookingRepo) Confirm(_ context.Context, id uuid.UUID) error {
	b, ok := f.bookings[id]
	if !ok {
		return entity.ErrNotFound
	}
	if b.Status != entity.BookingStatusApproved {
		return entity.ErrInvalidTransition
	}
	if f.bookedOn(b.EventDate, b.ID) {
		return entity.ErrDateConflict
	}
	b.Status = entity.BookingStatusBooked
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookingRepo) CountPerStatus(_ context.Context) (map[entity.BookingStatus]int64, error) {
	result := make(map[entity.BookingStatus]int64)
	for _, b := range f.bookings {
		result[b.Status]++
	}
	return result, nil
}

func (f *fakeBookingRepo) CountPerEventType(_ context.Context) (map[entity.EventType]int64, error) {
	result := make(map[entity.EventType]int64)
	for _, b := range f.bookings {
		result[b.EventType]++
	}
	return result, nil
}

func (f *fakeBookingRepo) CountPerMonth(_ context.Context, year int) (map[int]int64, error) {
	result := make(map[int]int64)
	for _, b := range f.bookings {
		if b.EventDate.Year() == year {
			result[int(b.EventDate.Month())]++
		}
	}
	return result, nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment // keyed by booking ID
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	if _, ok := f.payments[payment.BookingID]; ok {
		return errors.New("duplicate payment")
	}
	clone := *payment
	f.payments[payment.BookingID] = &clone
	return nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	p, ok := f.payments[bookingID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func newTestBookingService() (BookingService, *fakeBookingRepo, *fakePaymentRepo) {
	bookings := newFakeBookingRepo()
	payments := newFakePaymentRepo()
	repo := &repository.Repository{
		Booking: bookings,
		Payment: payments,
	}
	return NewBookingService(repo, zap.NewNop()), bookings, payments
}

func validSubmitRequest(date string) *request.SubmitBookingRequest {
	return &request.SubmitBookingRequest{
		Name:       "Asha Patel",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		EventType:  "wedding",
		Date:       date,
		StartTime:  "10:00",
		EndTime:    "22:00",
		GuestCount: 250,
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(entity.DateKey)
}

func TestSubmitBooking(t *testing.T) {
	svc, _, _ := newTestBookingService()
	userID := uuid.New().String()

	resp, err := svc.SubmitBooking(context.Background(), userID, validSubmitRequest(futureDate(30)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != entity.BookingStatusPending {
		t.Fatalf("expected new booking pending, got %s", resp.Status)
	}
	if !strings.HasPrefix(resp.Reference, "EVT-") {
		t.Fatalf("expected EVT reference, got %q", resp.Reference)
	}
	if resp.UserID != userID {
		t.Fatalf("expected booking owned by %s, got %s", userID, resp.UserID)
	}
}

func TestSubmitBooking_ValidationFailures(t *testing.T) {
	svc, _, _ := newTestBookingService()
	userID := uuid.New().String()

	tests := []struct {
		name   string
		mutate func(*request.SubmitBookingRequest)
	}{
		{"missing email", func(r *request.SubmitBookingRequest) { r.Email = "" }},
		{"bad email", func(r *request.SubmitBookingRequest) { r.Email = "not-an-email" }},
		{"bad event type", func(r *request.SubmitBookingRequest) { r.EventType = "concert" }},
		{"bad date format", func(r *request.SubmitBookingRequest) { r.Date = "30-12-2026" }},
		{"zero guests", func(r *request.SubmitBookingRequest) { r.GuestCount = 0 }},
		{"bad start time", func(r *request.SubmitBookingRequest) { r.StartTime = "10am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest(futureDate(30))
			tt.mutate(req)

			_, err := svc.SubmitBooking(context.Background(), userID, req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), "validation failed") {
				t.Fatalf("expected validation error, got: %v", err)
			}
		})
	}
}

func TestSubmitBooking_PastDateRejected(t *testing.T) {
	svc, _, _ := newTestBookingService()

	past := time.Now().AddDate(0, 0, -1).Format(entity.DateKey)
	_, err := svc.SubmitBooking(context.Background(), uuid.New().String(), validSubmitRequest(past))
	if err == nil {
		t.Fatalf("expected error for past date")
	}
	if !strings.Contains(err.Error(), "in the past") {
		t.Fatalf("expected past date error, got: %v", err)
	}
}

func TestSubmitBooking_BookedDateConflicts(t *testing.T) {
	svc, bookings, _ := newTestBookingService()
	date := futureDate(30)

	first, err := svc.SubmitBooking(context.Background(), uuid.New().String(), validSubmitRequest(date))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second request on the same date is fine while the first is pending.
	if _, err := svc.SubmitBooking(context.Background(), uuid.New().String(), validSubmitRequest(date)); err != nil {
		t.Fatalf("pending date should still accept requests: %v", err)
	}

	// Once a booking is confirmed the date is closed.
	id := uuid.MustParse(first.ID)
	bookings.bookings[id].Status = entity.BookingStatusBooked

	_, err = svc.SubmitBooking(context.Background(), uuid.New().String(), validSubmitRequest(date))
	if !errors.Is(err, entity.ErrDateConflict) {
		t.Fatalf("expected ErrDateConflict, got: %v", err)
	}
}

func TestApproveRejectWorkflow(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()

	submitted, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(futureDate(30)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	approved, err := svc.ApproveBooking(ctx, submitted.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != entity.BookingStatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	// Approving twice is an invalid transition.
	if _, err := svc.ApproveBooking(ctx, submitted.ID); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}

	// An approved booking can still be rejected.
	rejected, err := svc.RejectBooking(ctx, submitted.ID, &request.RejectBookingRequest{RejectionReason: "venue maintenance"})
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != entity.BookingStatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if rejected.RejectionReason == nil || *rejected.RejectionReason != "venue maintenance" {
		t.Fatalf("expected rejection reason persisted, got %v", rejected.RejectionReason)
	}

	// Rejected is terminal.
	if _, err := svc.ApproveBooking(ctx, submitted.ID); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition after rejection, got: %v", err)
	}
}

func TestRejectBooking_RequiresReason(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()

	submitted, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(futureDate(30)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.RejectBooking(ctx, submitted.ID, &request.RejectBookingRequest{})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error for empty reason, got: %v", err)
	}
}

func TestConfirmBooking(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()

	submitted, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(futureDate(30)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pending cannot be confirmed directly.
	if _, err := svc.ConfirmBooking(ctx, submitted.ID); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for pending, got: %v", err)
	}

	if _, err := svc.ApproveBooking(ctx, submitted.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	confirmed, err := svc.ConfirmBooking(ctx, submitted.ID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != entity.BookingStatusBooked {
		t.Fatalf("expected booked, got %s", confirmed.Status)
	}
}

func TestConfirmBooking_SecondApprovedLosesDate(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()
	date := futureDate(30)

	first, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(date))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(date))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both approved, then both race to confirm the same date.
	if _, err := svc.ApproveBooking(ctx, first.ID); err != nil {
		t.Fatalf("approve first failed: %v", err)
	}
	if _, err := svc.ApproveBooking(ctx, second.ID); err != nil {
		t.Fatalf("approve second failed: %v", err)
	}

	if _, err := svc.ConfirmBooking(ctx, first.ID); err != nil {
		t.Fatalf("confirm first failed: %v", err)
	}

	_, err = svc.ConfirmBooking(ctx, second.ID)
	if !errors.Is(err, entity.ErrDateConflict) {
		t.Fatalf("expected ErrDateConflict for second confirm, got: %v", err)
	}

	// The loser stays approved so the admin can reject it with a reason.
	got, err := svc.GetBookingByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entity.BookingStatusApproved {
		t.Fatalf("expected loser to remain approved, got %s", got.Status)
	}
}

func TestRecordPayment(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()
	adminID := uuid.New().String()

	submitted, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(futureDate(30)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paymentReq := &request.RecordPaymentRequest{
		Amount:     "50000.00",
		Method:     "transfer",
		ReceivedAt: time.Now().Format(entity.DateKey),
	}

	// Pending bookings cannot take payments.
	if _, err := svc.RecordPayment(ctx, adminID, submitted.ID, paymentReq); err == nil {
		t.Fatalf("expected error recording payment on pending booking")
	}

	if _, err := svc.ApproveBooking(ctx, submitted.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	payment, err := svc.RecordPayment(ctx, adminID, submitted.ID, paymentReq)
	if err != nil {
		t.Fatalf("record payment failed: %v", err)
	}
	if payment.Amount != "50000.00" {
		t.Fatalf("expected amount 50000.00, got %s", payment.Amount)
	}

	// One payment per booking.
	if _, err := svc.RecordPayment(ctx, adminID, submitted.ID, paymentReq); err == nil {
		t.Fatalf("expected error for duplicate payment")
	}

	// The payment shows up on the booking detail.
	got, err := svc.GetBookingByID(ctx, submitted.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Payment == nil || got.Payment.Amount != "50000.00" {
		t.Fatalf("expected payment attached to booking, got %+v", got.Payment)
	}
}

func TestRecordPayment_InvalidAmount(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()

	submitted, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(futureDate(30)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ApproveBooking(ctx, submitted.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	for _, amount := range []string{"abc", "-100", "0"} {
		req := &request.RecordPaymentRequest{
			Amount:     amount,
			Method:     "cash",
			ReceivedAt: time.Now().Format(entity.DateKey),
		}
		if _, err := svc.RecordPayment(ctx, uuid.New().String(), submitted.ID, req); err == nil {
			t.Fatalf("expected error for amount %q", amount)
		}
	}
}

func TestGetAvailability(t *testing.T) {
	svc, bookings, _ := newTestBookingService()
	ctx := context.Background()

	dayOne := futureDate(10)
	dayTwo := futureDate(11)

	first, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(dayOne))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(dayTwo)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bookings.bookings[uuid.MustParse(first.ID)].Status = entity.BookingStatusBooked

	from := time.Now()
	to := from.AddDate(0, 1, 0)
	availability, err := svc.GetAvailability(ctx, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(availability) != 2 {
		t.Fatalf("expected 2 classified dates, got %d", len(availability))
	}
	if availability[0].Date != dayOne || availability[0].Availability != entity.AvailabilityBooked {
		t.Fatalf("expected %s booked first, got %+v", dayOne, availability[0])
	}
	if availability[1].Date != dayTwo || availability[1].Availability != entity.AvailabilityPending {
		t.Fatalf("expected %s pending second, got %+v", dayTwo, availability[1])
	}
}

// failingPaymentRepo simulates a payment store outage.
type failingPaymentRepo struct{}

func (failingPaymentRepo) Create(_ context.Context, _ *entity.Payment) error {
	return errors.New("payment store unavailable")
}

func (failingPaymentRepo) FindByBookingID(_ context.Context, _ uuid.UUID) (*entity.Payment, error) {
	return nil, errors.New("payment store unavailable")
}

func TestGetBookingByID_PaymentLookupFailure(t *testing.T) {
	bookings := newFakeBookingRepo()
	repo := &repository.Repository{
		Booking: bookings,
		Payment: failingPaymentRepo{},
	}
	svc := NewBookingService(repo, zap.NewNop())
	ctx := context.Background()

	submitted, err := svc.SubmitBooking(ctx, uuid.New().String(), validSubmitRequest(futureDate(30)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A payment lookup failure must not render the booking as unpaid.
	_, err = svc.GetBookingByID(ctx, submitted.ID)
	if err == nil || !strings.Contains(err.Error(), "load payment") {
		t.Fatalf("expected payment lookup error, got: %v", err)
	}

	// List endpoints stay usable without the payment.
	page, err := svc.ListBookings(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Data) != 1 {
		t.Fatalf("expected 1 booking listed, got %d", len(page.Data))
	}
	if page.Data[0].Payment != nil {
		t.Fatalf("expected no payment attached on lookup failure")
	}
}

func TestGetBookingByID_NotFound(t *testing.T) {
	svc, _, _ := newTestBookingService()

	_, err := svc.GetBookingByID(context.Background(), uuid.New().String())
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	_, err = svc.GetBookingByID(context.Background(), "not-a-uuid")
	if err == nil || !strings.Contains(err.Error(), "invalid booking ID") {
		t.Fatalf("expected invalid ID error, got: %v", err)
	}
}
