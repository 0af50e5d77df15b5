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

type StudentAwardService interface {
	Submit(ctx context.Context, userID string, req *request.StudentAwardRequest) (*response.StudentAwardResponse, error)

	// Admin workflow: awards are only ever approved or rejected.
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.StudentAwardResponse], error)
	GetByID(ctx context.Context, registrationID string) (*response.StudentAwardResponse, error)
	Approve(ctx context.Context, registrationID string) (*response.StudentAwardResponse, error)
	Reject(ctx context.Context, registrationID string, req *request.RejectBookingRequest) (*response.StudentAwardResponse, error)
}

type studentAwardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStudentAwardService(repo *repository.Repository, log *zap.Logger) StudentAwardService {
	return &studentAwardService{
		repo: repo,
		log:  log.With(zap.String("service", "student_award")),
	}
}

func (s *studentAwardService) Submit(ctx context.Context, userID string, req *request.StudentAwardRequest) (*response.StudentAwardResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Student award validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	window, err := s.repo.FormWindow.FindByType(ctx, entity.FormTypeStudentAward)
	if err != nil {
		return nil, fmt.Errorf("check form window: %w", err)
	}
	if !window.IsOpen(time.Now()) {
		return nil, fmt.Errorf("student award registration: %w", entity.ErrFormClosed)
	}

	now := time.Now()
	reg := &entity.StudentAwardRegistration{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:     utils.GenerateReference("AWD"),
		UserID:        userUUID,
		StudentName:   req.StudentName,
		ParentName:    req.ParentName,
		School:        req.School,
		Grade:         req.Grade,
		Email:         req.Email,
		Phone:         req.Phone,
		AwardCategory: req.AwardCategory,
		MarksheetRef:  req.Marksheet,
		Status:        entity.BookingStatusPending,
	}

	if err := s.repo.StudentAward.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.log.Info("Student award registration submitted",
		zap.String("registration_id", reg.ID.String()),
		zap.String("reference", reg.Reference),
		zap.String("user_id", userID),
	)

	resp := response.StudentAwardToResponse(reg)
	return &resp, nil
}

func (s *studentAwardService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.StudentAwardResponse], error) {
	regs, err := s.repo.StudentAward.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list student award registrations", zap.Error(err))
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	total, err := s.repo.StudentAward.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	responses := make([]response.StudentAwardResponse, len(regs))
	for i, reg := range regs {
		responses[i] = response.StudentAwardToResponse(reg)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *studentAwardService) GetByID(ctx context.Context, registrationID string) (*response.StudentAwardResponse, error) {
	reg, err := s.findRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	resp := response.StudentAwardToResponse(reg)
	return &resp, nil
}

func (s *studentAwardService) Approve(ctx context.Context, registrationID string) (*response.StudentAwardResponse, error) {
	reg, err := s.findRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(reg.Status, entity.BookingStatusApproved) {
		return nil, fmt.Errorf("registration %s is %s: %w", registrationID, reg.Status, entity.ErrInvalidTransition)
	}

	if err := s.repo.StudentAward.UpdateStatus(ctx, reg.ID, reg.Status, entity.BookingStatusApproved, nil); err != nil {
		return nil, err
	}

	s.log.Info("Student award registration approved",
		zap.String("registration_id", registrationID),
		zap.String("reference", reg.Reference),
	)

	return s.GetByID(ctx, registrationID)
}

func (s *studentAwardService) Reject(ctx context.Context, registrationID string, req *request.RejectBookingRequest) (*response.StudentAwardResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reject registration validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reg, err := s.findRegistration(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(reg.Status, entity.BookingStatusRejected) {
		return nil, fmt.Errorf("registration %s is %s: %w", registrationID, reg.Status, entity.ErrInvalidTransition)
	}

	reason := req.RejectionReason
	if err := s.repo.StudentAward.UpdateStatus(ctx, reg.ID, reg.Status, entity.BookingStatusRejected, &reason); err != nil {
		return nil, err
	}

	s.log.Info("Student award registration rejected",
		zap.String("registration_id", registrationID),
		zap.String("reference", reg.Reference),
		zap.String("reason", reason),
	)

	return s.GetByID(ctx, registrationID)
}

func (s *studentAwardService) findRegistration(ctx context.Context, registrationID string) (*entity.StudentAwardRegistration, error) {
	id, err := uuid.Parse(registrationID)
	if err != nil {
		return nil, fmt.Errorf("invalid registration ID format %s: %w", registrationID, err)
	}

	reg, err := s.repo.StudentAward.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("registration %s: %w", registrationID, entity.ErrNotFound)
	}

	return reg, nil
}
