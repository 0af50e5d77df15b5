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

type SamuhLaganRepository interface {
	Create(ctx context.Context, reg *entity.SamuhLaganRegistration) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SamuhLaganRegistration, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.SamuhLaganRegistration, error)
	Count(ctx context.Context) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SamuhLaganRegistration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, rejectionReason *string) error
}

type samuhLaganRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSamuhLaganRepository(db database.PgxIface, log *zap.Logger) SamuhLaganRepository {
	return &samuhLaganRepository{
		db:  db,
		log: log.With(zap.String("repository", "samuh_lagan")),
	}
}

const samuhLaganColumns = `id, reference, user_id,
	bride_name, bride_father_name, bride_mother_name, bride_age, bride_mobile, bride_email, bride_address, bride_doc_ref,
	groom_name, groom_father_name, groom_mother_name, groom_age, groom_mobile, groom_email, groom_address, groom_doc_ref,
	status, rejection_reason, created_at, updated_at`

func scanSamuhLagan(row pgx.Row) (*entity.SamuhLaganRegistration, error) {
	var reg entity.SamuhLaganRegistration
	err := row.Scan(
		&reg.ID,
		&reg.Reference,
		&reg.UserID,
		&reg.BrideName,
		&reg.BrideFatherName,
		&reg.BrideMotherName,
		&reg.BrideAge,
		&reg.BrideMobile,
		&reg.BrideEmail,
		&reg.BrideAddress,
		&reg.BrideDocRef,
		&reg.GroomName,
		&reg.GroomFatherName,
		&reg.GroomMotherName,
		&reg.GroomAge,
		&reg.GroomMobile,
		&reg.GroomEmail,
		&reg.GroomAddress,
		&reg.GroomDocRef,
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

func (r *samuhLaganRepository) Create(ctx context.Context, reg *entity.SamuhLaganRegistration) error {
	query := `
		INSERT INTO samuh_lagan_registrations (id, reference, user_id,
			bride_name, bride_father_name, bride_mother_name, bride_age, bride_mobile, bride_email, bride_address, bride_doc_ref,
			groom_name, groom_father_name, groom_mother_name, groom_age, groom_mobile, groom_email, groom_address, groom_doc_ref,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		        $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err := r.db.Exec(ctx, query,
		reg.ID,
		reg.Reference,
		reg.UserID,
		reg.BrideName,
		reg.BrideFatherName,
		reg.BrideMotherName,
		reg.BrideAge,
		reg.BrideMobile,
		reg.BrideEmail,
		reg.BrideAddress,
		reg.BrideDocRef,
		reg.GroomName,
		reg.GroomFatherName,
		reg.GroomMotherName,
		reg.GroomAge,
		reg.GroomMobile,
		reg.GroomEmail,
		reg.GroomAddress,
		reg.GroomDocRef,
		reg.Status,
		reg.CreatedAt,
		reg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create samuh lagan registration",
			zap.Error(err),
			zap.String("reference", reg.Reference),
		)
		return fmt.Errorf("create samuh lagan registration %s: %w", reg.Reference, err)
	}

	return nil
}

func (r *samuhLaganRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SamuhLaganRegistration, error) {
	query := `SELECT ` + samuhLaganColumns + ` FROM samuh_lagan_registrations WHERE id = $1`

	reg, err := scanSamuhLagan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find samuh lagan registration",
			zap.Error(err),
			zap.String("registration_id", id.String()),
		)
		return nil, fmt.Errorf("find samuh lagan registration %s: %w", id.String(), err)
	}

	return reg, nil
}

func (r *samuhLaganRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.SamuhLaganRegistration, error) {
	query := `
		SELECT ` + samuhLaganColumns + `
		FROM samuh_lagan_registrations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list samuh lagan registrations", zap.Error(err))
		return nil, fmt.Errorf("list samuh lagan registrations: %w", err)
	}
	defer rows.Close()

	var regs []*entity.SamuhLaganRegistration
	for rows.Next() {
		reg, err := scanSamuhLagan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan samuh lagan row: %w", err)
		}
		regs = append(regs, reg)
	}

	return regs, rows.Err()
}

func (r *samuhLaganRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM samuh_lagan_registrations`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count samuh lagan registrations", zap.Error(err))
		return 0, fmt.Errorf("count samuh lagan registrations: %w", err)
	}

	return count, nil
}

func (r *samuhLaganRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SamuhLaganRegistration, error) {
	query := `
		SELECT ` + samuhLaganColumns + `
		FROM samuh_lagan_registrations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find samuh lagan registrations by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find samuh lagan registrations by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var regs []*entity.SamuhLaganRegistration
	for rows.Next() {
		reg, err := scanSamuhLagan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan samuh lagan row: %w", err)
		}
		regs = append(regs, reg)
	}

	return regs, rows.Err()
}

func (r *samuhLaganRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, rejectionReason *string) error {
	query := `
		UPDATE samuh_lagan_registrations
		SET status = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, id, from, to, rejectionReason)
	if err != nil {
		r.log.Error("Failed to update samuh lagan status",
			zap.Error(err),
			zap.String("registration_id", id.String()),
			zap.String("to", string(to)),
		)
		return fmt.Errorf("update samuh lagan registration %s status to %s: %w", id.String(), string(to), err)
	}

	if result.RowsAffected() == 0 {
		existing, findErr := r.FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		if existing == nil {
			return fmt.Errorf("samuh lagan registration %s: %w", id.String(), entity.ErrNotFound)
		}
		return fmt.Errorf("samuh lagan registration %s is %s: %w", id.String(), existing.Status, entity.ErrInvalidTransition)
	}

	return nil
}
