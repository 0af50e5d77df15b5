package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create inserts a new pending booking. The insert is conditional on no
	// confirmed booking existing for the same date; entity.ErrDateConflict
	// otherwise. This is the authoritative submission-time check.
	Create(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)

	// ExistsBookedOnDate backs the client-facing availability pre-check.
	ExistsBookedOnDate(ctx context.Context, date time.Time) (bool, error)

	// UpdateStatus performs a compare-and-set status change: the row must
	// currently hold `from`. entity.ErrInvalidTransition when another
	// session moved the booking first.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, rejectionReason *string) error

	// Confirm moves an approved booking to Booked, re-validating date
	// uniqueness in the same statement. entity.ErrDateConflict when another
	// booking already holds the date.
	Confirm(ctx context.Context, id uuid.UUID) error

	// Report queries
	CountPerStatus(ctx context.Context) (map[entity.BookingStatus]int64, error)
	CountPerEventType(ctx context.Context) (map[entity.EventType]int64, error)
	CountPerMonth(ctx context.Context, year int) (map[int]int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, user_id, requester_name, email, phone, event_type,
	event_date, start_time, end_time, guest_count, document_ref, additional_notes,
	status, rejection_reason, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.UserID,
		&b.RequesterName,
		&b.Email,
		&b.Phone,
		&b.EventType,
		&b.EventDate,
		&b.StartTime,
		&b.EndTime,
		&b.GuestCount,
		&b.DocumentRef,
		&b.AdditionalNotes,
		&b.Status,
		&b.RejectionReason,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	// Insert only while no confirmed booking holds the date. The store, not
	// the client, arbitrates the race between selection and submission.
	query := `
		INSERT INTO bookings (id, reference, user_id, requester_name, email, phone,
		                      event_type, event_date, start_time, end_time, guest_count,
		                      document_ref, additional_notes, status, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE event_date = $8 AND status = 'Booked'
		)
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.UserID,
		booking.RequesterName,
		booking.Email,
		booking.Phone,
		booking.EventType,
		booking.EventDate,
		booking.StartTime,
		booking.EndTime,
		booking.GuestCount,
		booking.DocumentRef,
		booking.AdditionalNotes,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("create booking %s: %w", booking.Reference, entity.ErrDateConflict)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE event_date >= $1 AND event_date < $2
		ORDER BY event_date, created_at
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find bookings by date range",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find bookings by date range: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) ExistsBookedOnDate(ctx context.Context, date time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE event_date = $1 AND status = 'Booked')`

	var exists bool
	if err := r.db.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		r.log.Error("Failed to check booked date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return false, fmt.Errorf("check booked date: %w", err)
	}

	return exists, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, rejectionReason *string) error {
	query := `
		UPDATE bookings
		SET status = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, id, from, to, rejectionReason)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(to), err)
	}

	if result.RowsAffected() == 0 {
		// Either the booking is gone or another session moved it first.
		existing, findErr := r.FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		if existing == nil {
			return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
		}
		return fmt.Errorf("booking %s is %s: %w", id.String(), existing.Status, entity.ErrInvalidTransition)
	}

	return nil
}

func (r *bookingRepository) Confirm(ctx context.Context, id uuid.UUID) error {
	// Single authoritative check-and-write: the date-uniqueness invariant is
	// re-validated inside the UPDATE, because multiple bookings may have been
	// independently approved for the same date.
	query := `
		UPDATE bookings
		SET status = 'Booked', updated_at = NOW()
		WHERE id = $1
		  AND status = 'Approved'
		  AND NOT EXISTS (
			SELECT 1 FROM bookings other
			WHERE other.event_date = bookings.event_date
			  AND other.status = 'Booked'
			  AND other.id <> bookings.id
		  )
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("confirm booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		existing, findErr := r.FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		if existing == nil {
			return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
		}
		if existing.Status != entity.BookingStatusApproved {
			return fmt.Errorf("booking %s is %s: %w", id.String(), existing.Status, entity.ErrInvalidTransition)
		}
		return fmt.Errorf("confirm booking %s: %w", id.String(), entity.ErrDateConflict)
	}

	return nil
}

func (r *bookingRepository) CountPerStatus(ctx context.Context) (map[entity.BookingStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		r.log.Error("Failed to count bookings per status", zap.Error(err))
		return nil, fmt.Errorf("count bookings per status: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.BookingStatus]int64)
	for rows.Next() {
		var status entity.BookingStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

func (r *bookingRepository) CountPerEventType(ctx context.Context) (map[entity.EventType]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT event_type, COUNT(*) FROM bookings GROUP BY event_type`)
	if err != nil {
		r.log.Error("Failed to count bookings per event type", zap.Error(err))
		return nil, fmt.Errorf("count bookings per event type: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.EventType]int64)
	for rows.Next() {
		var eventType entity.EventType
		var count int64
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("scan event type count: %w", err)
		}
		counts[eventType] = count
	}

	return counts, nil
}

func (r *bookingRepository) CountPerMonth(ctx context.Context, year int) (map[int]int64, error) {
	query := `
		SELECT EXTRACT(MONTH FROM event_date)::int AS month, COUNT(*)
		FROM bookings
		WHERE EXTRACT(YEAR FROM event_date)::int = $1
		GROUP BY month
	`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		r.log.Error("Failed to count bookings per month",
			zap.Error(err),
			zap.Int("year", year),
		)
		return nil, fmt.Errorf("count bookings per month: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int64)
	for rows.Next() {
		var month int
		var count int64
		if err := rows.Scan(&month, &count); err != nil {
			return nil, fmt.Errorf("scan month count: %w", err)
		}
		counts[month] = count
	}

	return counts, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
