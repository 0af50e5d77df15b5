package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ReportService interface {
	GetBookingReport(ctx context.Context, year int) (*response.BookingReportResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) GetBookingReport(ctx context.Context, year int) (*response.BookingReportResponse, error) {
	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	byStatus, err := s.repo.Booking.CountPerStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count per status: %w", err)
	}

	byEventType, err := s.repo.Booking.CountPerEventType(ctx)
	if err != nil {
		return nil, fmt.Errorf("count per event type: %w", err)
	}

	byMonth, err := s.repo.Booking.CountPerMonth(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("count per month: %w", err)
	}

	samuhLagan, err := s.repo.SamuhLagan.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count samuh lagan registrations: %w", err)
	}

	studentAward, err := s.repo.StudentAward.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count student award registrations: %w", err)
	}

	statusCounts := make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		statusCounts[string(status)] = count
	}

	typeCounts := make(map[string]int64, len(byEventType))
	for eventType, count := range byEventType {
		typeCounts[string(eventType)] = count
	}

	s.log.Info("Booking report generated",
		zap.Int("year", year),
		zap.Int64("total", total),
	)

	return &response.BookingReportResponse{
		Year:         year,
		Total:        total,
		ByStatus:     statusCounts,
		ByEventType:  typeCounts,
		ByMonth:      byMonth,
		SamuhLagan:   samuhLagan,
		StudentAward: studentAward,
	}, nil
}
