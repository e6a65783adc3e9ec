package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("user@example.com", "securepassword1234")
	if err != nil {
		t.Fatalf("Unexpected error creating user: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("Expected a non-nil user ID")
	}
	if user.Email != "user@example.com" {
		t.Errorf("Expected email to be preserved, got %q", user.Email)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid user", "user@example.com", "securepassword1234", nil},
		{"empty email", "", "securepassword1234", domain.ErrInvalidEmail},
		{"malformed email", "not-an-email", "securepassword1234", domain.ErrInvalidEmail},
		{"password too short", "user@example.com", "short", domain.ErrInvalidPassword},
		{"password too long", "user@example.com", string(make([]byte, 80)), domain.ErrInvalidPassword},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := domain.NewUser(tc.email, tc.password)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}
