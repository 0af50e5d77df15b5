package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StudentAwardRepository interface {
	Create(ctx context.Context, reg *entity.StudentAwardRegistration) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentAwardRegistration, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.StudentAwardRegistration, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, rejectionReason *string) error
}

type studentAwardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStudentAwardRepository(db database.PgxIface, log *zap.Logger) StudentAwardRepository {
	return &studentAwardRepository{
		db:  db,
		log: log.With(zap.String("repository", "student_award")),
	}
}

const studentAwardColumns = `id, reference, user_id, student_name, parent_name, school, grade,
	email, phone, award_category, marksheet_ref, status, rejection_reason, created_at, updated_at`

func scanStudentAward(row pgx.Row) (*entity.StudentAwardRegistration, error) {
	var reg entity.StudentAwardRegistration
	err := row.Scan(
		&reg.ID,
		&reg.Reference,
		&reg.UserID,
		&reg.StudentName,
		&reg.ParentName,
		&reg.School,
		&reg.Grade,
		&reg.Email,
		&reg.Phone,
		&reg.AwardCategory,
		&reg.MarksheetRef,
		&reg.Status,
		&reg.RejectionReason,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *studentAwardRepository) Create(ctx context.Context, reg *entity.StudentAwardRegistration) error {
	query := `
		INSERT INTO student_award_registrations (id, reference, user_id, student_name, parent_name,
			school, grade, email, phone, award_category, marksheet_ref, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		reg.ID,
		reg.Reference,
		reg.UserID,
		reg.StudentName,
		reg.ParentName,
		reg.School,
		reg.Grade,
		reg.Email,
		reg.Phone,
		reg.AwardCategory,
		reg.MarksheetRef,
		reg.Status,
		reg.CreatedAt,
		reg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create student award registration",
			zap.Error(err),
			zap.String("reference", reg.Reference),
		)
		return fmt.Errorf("create student award registration %s: %w", reg.Reference, err)
	}

	return nil
}

func (r *studentAwardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentAwardRegistration, error) {
	query := `SELECT ` + studentAwardColumns + ` FROM student_award_registrations WHERE id = $1`

	reg, err := scanStudentAward(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find student award registration",
			zap.Error(err),
			zap.String("registration_id", id.String()),
		)
		return nil, fmt.Errorf("find student award registration %s: %w", id.String(), err)
	}

	return reg, nil
}

func (r *studentAwardRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.StudentAwardRegistration, error) {
	query := `
		SELECT ` + studentAwardColumns + `
		FROM student_award_registrations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list student award registrations", zap.Error(err))
		return nil, fmt.Errorf("list student award registrations: %w", err)
	}
	defer rows.Close()

	var regs []*entity.StudentAwardRegistration
	for rows.Next() {
		reg, err := scanStudentAward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student award row: %w", err)
		}
		regs = append(regs, reg)
	}

	return regs, rows.Err()
}

func (r *studentAwardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student_award_registrations`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count student award registrations", zap.Error(err))
		return 0, fmt.Errorf("count student award registrations: %w", err)
	}

	return count, nil
}

func (r *studentAwardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, rejectionReason *string) error {
	query := `
		UPDATE student_award_registrations
		SET status = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, id, from, to, rejectionReason)
	if err != nil {
		r.log.Error("Failed to update student award status",
			zap.Error(err),
			zap.String("registration_id", id.String()),
			zap.String("to", string(to)),
		)
		return fmt.Errorf("update student award registration %s status to %s: %w", id.String(), string(to), err)
	}

	if result.RowsAffected() == 0 {
		existing, findErr := r.FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		if existing == nil {
			return fmt.Errorf("student award registration %s: %w", id.String(), entity.ErrNotFound)
		}
		return fmt.Errorf("student award registration %s is %s: %w", id.String(), existing.Status, entity.ErrInvalidTransition)
	}

	return nil
}
