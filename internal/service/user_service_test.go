package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalage/bioage-api/internal/mocks"
	"github.com/vitalage/bioage-api/internal/service"
	"github.com/vitalage/bioage-api/internal/service/auth"
)

// fakeHasher mirrors the prefixing scheme of the in-memory user store so the
// tests avoid paying for bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(_ context.Context, password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(_ context.Context, hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

var _ auth.PasswordHasher = fakeHasher{}

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(mocks.NewMemoryUserStore(), fakeHasher{}, nil)

	user, err := svc.Register(context.Background(), "user@example.com", "securepassword1234")
	require.NoError(t, err)
	assert.Empty(t, user.Password, "plaintext must not survive registration")

	authed, err := svc.Authenticate(context.Background(), "user@example.com", "securepassword1234")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(mocks.NewMemoryUserStore(), fakeHasher{}, nil)

	_, err := svc.Register(context.Background(), "user@example.com", "securepassword1234")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "user@example.com", "otherpassword1234")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestAuthenticateFailures(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(mocks.NewMemoryUserStore(), fakeHasher{}, nil)

	_, err := svc.Register(context.Background(), "user@example.com", "securepassword1234")
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable to the caller.
	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "securepassword1234")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "user@example.com", "wrongpassword5678")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
