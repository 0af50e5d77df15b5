package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FormWindowRepository interface {
	FindByType(ctx context.Context, formType entity.FormType) (*entity.FormWindow, error)
	FindAll(ctx context.Context) ([]*entity.FormWindow, error)
	Upsert(ctx context.Context, window *entity.FormWindow) error
	Deactivate(ctx context.Context, formType entity.FormType) error
}

type formWindowRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFormWindowRepository(db database.PgxIface, log *zap.Logger) FormWindowRepository {
	return &formWindowRepository{
		db:  db,
		log: log.With(zap.String("repository", "form_window")),
	}
}

func (r *formWindowRepository) FindByType(ctx context.Context, formType entity.FormType) (*entity.FormWindow, error) {
	query := `
		SELECT id, form_type, active, opens_at, closes_at, created_at, updated_at
		FROM form_windows
		WHERE form_type = $1
	`

	var window entity.FormWindow
	err := r.db.QueryRow(ctx, query, formType).Scan(
		&window.ID,
		&window.FormType,
		&window.Active,
		&window.OpensAt,
		&window.ClosesAt,
		&window.CreatedAt,
		&window.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find form window",
			zap.Error(err),
			zap.String("form_type", string(formType)),
		)
		return nil, fmt.Errorf("find form window %s: %w", string(formType), err)
	}

	return &window, nil
}

func (r *formWindowRepository) FindAll(ctx context.Context) ([]*entity.FormWindow, error) {
	query := `
		SELECT id, form_type, active, opens_at, closes_at, created_at, updated_at
		FROM form_windows
		ORDER BY form_type
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list form windows", zap.Error(err))
		return nil, fmt.Errorf("list form windows: %w", err)
	}
	defer rows.Close()

	var windows []*entity.FormWindow
	for rows.Next() {
		var window entity.FormWindow
		err := rows.Scan(
			&window.ID,
			&window.FormType,
			&window.Active,
			&window.OpensAt,
			&window.ClosesAt,
			&window.CreatedAt,
			&window.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan form window row: %w", err)
		}
		windows = append(windows, &window)
	}

	return windows, rows.Err()
}

func (r *formWindowRepository) Upsert(ctx context.Context, window *entity.FormWindow) error {
	// One window per form type; setting a new window replaces the old one.
	query := `
		INSERT INTO form_windows (id, form_type, active, opens_at, closes_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (form_type) DO UPDATE
		SET active = EXCLUDED.active,
		    opens_at = EXCLUDED.opens_at,
		    closes_at = EXCLUDED.closes_at,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		window.ID,
		window.FormType,
		window.Active,
		window.OpensAt,
		window.ClosesAt,
		window.CreatedAt,
		window.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert form window",
			zap.Error(err),
			zap.String("form_type", string(window.FormType)),
		)
		return fmt.Errorf("upsert form window %s: %w", string(window.FormType), err)
	}

	return nil
}

func (r *formWindowRepository) Deactivate(ctx context.Context, formType entity.FormType) error {
	query := `UPDATE form_windows SET active = false, updated_at = NOW() WHERE form_type = $1`

	result, err := r.db.Exec(ctx, query, formType)
	if err != nil {
		r.log.Error("Failed to deactivate form window",
			zap.Error(err),
			zap.String("form_type", string(formType)),
		)
		return fmt.Errorf("deactivate form window %s: %w", string(formType), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("form window %s: %w", string(formType), entity.ErrNotFound)
	}

	return nil
}
