package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FormService interface {
	GetForms(ctx context.Context) ([]response.FormWindowResponse, error)
	SetWindow(ctx context.Context, formType string, req *request.SetFormWindowRequest) (*response.FormWindowResponse, error)
	Deactivate(ctx context.Context, formType string) error
}

type formService struct {
	repo repository.FormWindowRepository
	log  *zap.Logger
}

func NewFormService(repo repository.FormWindowRepository, log *zap.Logger) FormService {
	return &formService{
		repo: repo,
		log:  log.With(zap.String("service", "form")),
	}
}

func (s *formService) GetForms(ctx context.Context) ([]response.FormWindowResponse, error) {
	windows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list form windows", zap.Error(err))
		return nil, fmt.Errorf("list form windows: %w", err)
	}

	now := time.Now()
	responses := make([]response.FormWindowResponse, len(windows))
	for i, window := range windows {
		responses[i] = response.FormWindowToResponse(window, now)
	}

	return responses, nil
}

func (s *formService) SetWindow(ctx context.Context, formType string, req *request.SetFormWindowRequest) (*response.FormWindowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Set form window validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	parsedType, err := entity.ParseFormType(formType)
	if err != nil {
		return nil, fmt.Errorf("form type %s: %w", formType, entity.ErrNotFound)
	}

	opensAt, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid start time %s", req.StartTime)
	}

	closesAt, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid end time %s", req.EndTime)
	}

	now := time.Now()
	if !closesAt.After(opensAt) {
		return nil, fmt.Errorf("validation failed: end time must be after start time")
	}
	if closesAt.Before(now) {
		return nil, fmt.Errorf("validation failed: end time is in the past")
	}

	window := &entity.FormWindow{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FormType: parsedType,
		Active:   true,
		OpensAt:  opensAt,
		ClosesAt: closesAt,
	}

	if err := s.repo.Upsert(ctx, window); err != nil {
		return nil, err
	}

	s.log.Info("Form window set",
		zap.String("form_type", string(parsedType)),
		zap.Time("opens_at", opensAt),
		zap.Time("closes_at", closesAt),
	)

	resp := response.FormWindowToResponse(window, now)
	return &resp, nil
}

func (s *formService) Deactivate(ctx context.Context, formType string) error {
	parsedType, err := entity.ParseFormType(formType)
	if err != nil {
		return fmt.Errorf("form type %s: %w", formType, entity.ErrNotFound)
	}

	if err := s.repo.Deactivate(ctx, parsedType); err != nil {
		return err
	}

	s.log.Info("Form window deactivated", zap.String("form_type", string(parsedType)))
	return nil
}
