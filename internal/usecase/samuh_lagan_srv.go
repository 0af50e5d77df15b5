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

type SamuhLaganService interface {
	Submit(ctx context.Context, userID string, req *request.SamuhLaganRequest) (*response.SamuhLaganResponse, error)
	GetUserRegistrations(ctx context.Context, userID string) ([]response.SamuhLaganResponse, error)

	// Admin workflow
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SamuhLaganResponse], error)
	GetByID(ctx context.Context, registrationID string) (*response.SamuhLaganResponse, error)
	Approve(ctx context.Context, registrationID string) (*response.SamuhLaganResponse, error)
	Reject(ctx context.Context, registrationID string, req *request.RejectBookingRequest) (*response.SamuhLaganResponse, error)
	Confirm(ctx context.Context, registrationID string) (*response.SamuhLaganResponse, error)
}

type samuhLaganService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSamuhLaganService(repo *repository.Repository, log *zap.Logger) SamuhLaganService {
	return &samuhLaganService{
		repo: repo,
		log:  log.With(zap.String("service", "samuh_lagan")),
	}
}

func (s *samuhLaganService) Submit(ctx context.Context, userID string, req *request.SamuhLaganRequest) (*response.SamuhLaganResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Samuh lagan validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	// Registrations are only accepted inside the admin-managed window.
	window, err := s.repo.FormWindow.FindByType(ctx, entity.FormTypeSamuhLagan)
	if err != nil {
		return nil, fmt.Errorf("check form window: %w", err)
	}
	if !window.IsOpen(time.Now()) {
		return nil, fmt.Errorf("samuh lagan registration: %w", entity.ErrFormClosed)
	}

	now := time.Now()
	reg := &entity.SamuhLaganRegistration{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:       utils.GenerateReference("SLG"),
		UserID:          userUUID,
		BrideName:       req.BrideName,
		BrideFatherName: req.BrideFatherName,
		BrideMotherName: req.BrideMotherName,
		BrideAge:        req.BrideAge,
		BrideMobile:     req.BrideMobile,
		BrideEmail:      req.BrideEmail,
		BrideAddress:    req.BrideAddress,
		BrideDocRef:     req.BrideDocument,
		GroomName:       req.GroomName,
		GroomFatherName: req.GroomFatherName,
		GroomMotherName: req.GroomMotherName,
		GroomAge:        req.GroomAge,
		GroomMobile:     req.GroomMobile,
		GroomEmail:      req.GroomEmail,
		GroomAddress:    req.GroomAddress,
		GroomDocRef:     req.GroomDocument,
		Status:          entity.BookingStatusPending,
	}

	if err := s.repo.SamuhLagan.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.log.Info("Samuh lagan registration submitted",
		zap.String("registration_id", reg.ID.String()),
		zap.String("reference", reg.Reference),
		zap.String("user_id", userID),
	)

	resp := response.SamuhLaganToResponse(reg)
	return &resp, nil
}

func (s *samuhLaganService) GetUserRegistrations(ctx context.Context, userID string) ([]response.SamuhLaganResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	regs, err := s.repo.SamuhLagan.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("get user registrations: %w", err)
	}

	responses := make([]response.SamuhLaganResponse, len(regs))
	for i, reg := range regs {
		responses[i] = response.SamuhLaganToResponse(reg)
	}

	return responses, nil
}

func (s *samuhLaganService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SamuhLaganResponse], error) {
	regs, err := s.repo.SamuhLagan.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list samuh lagan registrations", zap.Error(err))
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	total, err := s.repo.SamuhLagan.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	responses := make([]response.SamuhLaganResponse, len(regs))
	for i, reg := range regs {
		responses[i] = response.SamuhLaganToResponse(reg)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *samuhLaganService) GetByID(ctx context.Context, registrationID string) (*response.SamuhLaganResponse, error) {
	reg, err := s.findRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	resp := response.SamuhLaganToResponse(reg)
	return &resp, nil
}

func (s *samuhLaganService) Approve(ctx context.Context, registrationID string) (*response.SamuhLaganResponse, error) {
	return s.transition(ctx, registrationID, entity.BookingStatusApproved, nil, "Samuh lagan registration approved")
}

func (s *samuhLaganService) Reject(ctx context.Context, registrationID string, req *request.RejectBookingRequest) (*response.SamuhLaganResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reject registration validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reason := req.RejectionReason
	return s.transition(ctx, registrationID, entity.BookingStatusRejected, &reason, "Samuh lagan registration rejected")
}

func (s *samuhLaganService) Confirm(ctx context.Context, registrationID string) (*response.SamuhLaganResponse, error) {
	// Group wedding: many couples share the ceremony, so confirmation has
	// no date-exclusivity guard.
	return s.transition(ctx, registrationID, entity.BookingStatusBooked, nil, "Samuh lagan registration confirmed")
}

func (s *samuhLaganService) transition(ctx context.Context, registrationID string, to entity.BookingStatus, reason *string, logMsg string) (*response.SamuhLaganResponse, error) {
	reg, err := s.findRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(reg.Status, to) {
		return nil, fmt.Errorf("registration %s is %s: %w", registrationID, reg.Status, entity.ErrInvalidTransition)
	}

	if err := s.repo.SamuhLagan.UpdateStatus(ctx, reg.ID, reg.Status, to, reason); err != nil {
		return nil, err
	}

	s.log.Info(logMsg,
		zap.String("registration_id", registrationID),
		zap.String("reference", reg.Reference),
	)

	return s.GetByID(ctx, registrationID)
}

func (s *samuhLaganService) findRegistration(ctx context.Context, registrationID string) (*entity.SamuhLaganRegistration, error) {
	id, err := uuid.Parse(registrationID)
	if err != nil {
		return nil, fmt.Errorf("invalid registration ID format %s: %w", registrationID, err)
	}

	reg, err := s.repo.SamuhLagan.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("registration %s: %w", registrationID, entity.ErrNotFound)
	}

	return reg, nil
}
