package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID uuid.UUID, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{
		Role:  role,
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	var gotUserID uuid.UUID
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth(testSecret, zap.NewNop())(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + signToken(t, testSecret, userID, "customer", time.Hour), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, testSecret, userID, "customer", -time.Hour), http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", userID, "customer", time.Hour), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}

	if gotUserID != userID {
		t.Fatalf("expected user ID %s on context, got %s", userID, gotUserID)
	}
	if gotRole != "customer" {
		t.Fatalf("expected role customer on context, got %q", gotRole)
	}
}

func TestAuth_NonUUIDSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "service-account",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	handler := Auth(testSecret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// fakeUserRepo backs the admin role check.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) { return 0, nil }

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

func TestAdmin(t *testing.T) {
	adminID := uuid.New()
	customerID := uuid.New()
	inactiveID := uuid.New()

	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{
		adminID:    {Base: entity.Base{ID: adminID}, Role: entity.RoleAdmin, IsActive: true},
		customerID: {Base: entity.Base{ID: customerID}, Role: entity.RoleCustomer, IsActive: true},
		inactiveID: {Base: entity.Base{ID: inactiveID}, Role: entity.RoleAdmin, IsActive: false},
	}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Admin(users, zap.NewNop())(next)

	tests := []struct {
		name       string
		userID     uuid.UUID
		withUser   bool
		wantStatus int
	}{
		{"active admin", adminID, true, http.StatusOK},
		{"customer", customerID, true, http.StatusForbidden},
		{"deactivated admin", inactiveID, true, http.StatusForbidden},
		{"unknown user", uuid.New(), true, http.StatusForbidden},
		{"no auth context", uuid.Nil, false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
			if tt.withUser {
				ctx := utils.SetUserContext(req.Context(), tt.userID, "admin", "user@example.com")
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
