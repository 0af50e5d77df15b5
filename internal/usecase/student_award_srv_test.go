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

type fakeStudentAwardRepo struct {
	regs map[uuid.UUID]*entity.StudentAwardRegistration
}

func newFakeStudentAwardRepo() *fakeStudentAwardRepo {
	return &fakeStudentAwardRepo{regs: make(map[uuid.UUID]*entity.StudentAwardRegistration)}
}

func (f *fakeStudentAwardRepo) Create(_ context.Context, reg *entity.StudentAwardRegistration) error {
	clone := *reg
	f.regs[reg.ID] = &clone
	return nil
}

func (f *fakeStudentAwardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.StudentAwardRegistration, error) {
	reg, ok := f.regs[id]
	if !ok {
		return nil, nil
	}
	clone := *reg
	return &clone, nil
}

func (f *fakeStudentAwardRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.StudentAwardRegistration, error) {
	var result []*entity.StudentAwardRegistration
	for _, reg := range f.regs {
		clone := *reg
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeStudentAwardRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.regs)), nil
}

func (f *fakeStudentAwardRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.BookingStatus, rejectionReason *string) error {
	reg, ok := f.regs[id]
	if !ok {
		return entity.ErrNotFound
	}
	if reg.Status != from {
		return entity.ErrInvalidTransition
	}
	reg.Status = to
	reg.RejectionReason = rejectionReason
	reg.UpdatedAt = time.Now()
	return nil
}

func newTestStudentAwardService() (StudentAwardService, *fakeFormWindowRepo) {
	windows := newFakeFormWindowRepo()
	repo := &repository.Repository{
		StudentAward: newFakeStudentAwardRepo(),
		FormWindow:   windows,
	}
	return NewStudentAwardService(repo, zap.NewNop()), windows
}

func validStudentAwardRequest() *request.StudentAwardRequest {
	return &request.StudentAwardRequest{
		StudentName:   "Nidhi Desai",
		ParentName:    "Prakash Desai",
		School:        "Shree Vidyalaya, Surat",
		Grade:         "10",
		Email:         "prakash@example.com",
		Phone:         "9876512345",
		AwardCategory: "academic excellence",
		Marksheet:     "docs/marksheet.pdf",
	}
}

func TestStudentAwardSubmit_WindowGating(t *testing.T) {
	svc, windows := newTestStudentAwardService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, uuid.New().String(), validStudentAwardRequest())
	if !errors.Is(err, entity.ErrFormClosed) {
		t.Fatalf("expected ErrFormClosed with no window, got: %v", err)
	}

	windows.windows[entity.FormTypeStudentAward] = openWindow(entity.FormTypeStudentAward)

	reg, err := svc.Submit(ctx, uuid.New().String(), validStudentAwardRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Status != entity.BookingStatusPending {
		t.Fatalf("expected pending registration, got %s", reg.Status)
	}
	if !strings.HasPrefix(reg.Reference, "AWD-") {
		t.Fatalf("expected AWD reference, got %q", reg.Reference)
	}
}

func TestStudentAwardWorkflow(t *testing.T) {
	svc, windows := newTestStudentAwardService()
	ctx := context.Background()
	windows.windows[entity.FormTypeStudentAward] = openWindow(entity.FormTypeStudentAward)

	first, err := svc.Submit(ctx, uuid.New().String(), validStudentAwardRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Submit(ctx, uuid.New().String(), validStudentAwardRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	approved, err := svc.Approve(ctx, first.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != entity.BookingStatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	rejected, err := svc.Reject(ctx, second.ID, &request.RejectBookingRequest{RejectionReason: "marksheet unreadable"})
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != entity.BookingStatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if rejected.RejectionReason == nil || *rejected.RejectionReason != "marksheet unreadable" {
		t.Fatalf("expected rejection reason persisted, got %v", rejected.RejectionReason)
	}

	// Rejected is terminal.
	if _, err := svc.Approve(ctx, second.ID); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
}

func TestStudentAwardSubmit_Validation(t *testing.T) {
	svc, windows := newTestStudentAwardService()
	windows.windows[entity.FormTypeStudentAward] = openWindow(entity.FormTypeStudentAward)

	req := validStudentAwardRequest()
	req.Marksheet = ""

	_, err := svc.Submit(context.Background(), uuid.New().String(), req)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error, got: %v", err)
	}
}
