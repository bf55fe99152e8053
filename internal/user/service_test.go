package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService() Service {
	return NewService(NewMemoryRepository())
}

func TestRegister_Success(t *testing.T) {
	service := newTestService()

	registered, err := service.Register("John Doe", "john@example.com", "long-enough-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "John Doe", registered.Name)
	assert.Equal(t, "john@example.com", registered.Email)
	assert.NotEqual(t, "long-enough-password", registered.PasswordHash)
	assert.False(t, registered.CreatedAt.IsZero())
}

func TestRegister_ValidationFailures(t *testing.T) {
	service := newTestService()

	tests := []struct {
		testName string
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty name", "  ", "john@example.com", "long-enough-password", ErrInvalidName},
		{"name too long", strings.Repeat("a", 61), "john@example.com", "long-enough-password", ErrNameTooLong},
		{"invalid email", "John", "not-an-email", "long-enough-password", ErrInvalidEmail},
		{"email too long", "John", strings.Repeat("a", 250) + "@example.com", "long-enough-password", ErrEmailTooLong},
		{"password too short", "John", "john@example.com", "short", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			_, err := service.Register(tt.name, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := newTestService()

	_, err := service.Register("John", "john@example.com", "long-enough-password")
	assert.NoError(t, err)

	_, err = service.Register("Johnny", "john@example.com", "another-password")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// Email lookup is case-insensitive.
	_, err = service.Register("Johnny", "JOHN@example.com", "another-password")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	service := newTestService()
	registered, err := service.Register("John", "john@example.com", "long-enough-password")
	assert.NoError(t, err)

	authenticated, err := service.Authenticate("john@example.com", "long-enough-password")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, authenticated.ID)

	_, err = service.Authenticate("john@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown emails get the same error as a bad password.
	_, err = service.Authenticate("nobody@example.com", "long-enough-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByID(t *testing.T) {
	service := newTestService()
	registered, err := service.Register("John", "john@example.com", "long-enough-password")
	assert.NoError(t, err)

	found, err := service.GetUserByID(registered.ID)
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", found.Email)

	_, err = service.GetUserByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	service := newTestService()
	registered, err := service.Register("John", "john@example.com", "long-enough-password")
	assert.NoError(t, err)

	updated, err := service.UpdateProfile(registered.ID, "Johnny", "johnny@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Johnny", updated.Name)
	assert.Equal(t, "johnny@example.com", updated.Email)

	// The old email is released for reuse.
	_, err = service.Register("Other", "john@example.com", "long-enough-password")
	assert.NoError(t, err)
}

func TestUpdateProfile_RejectsTakenEmail(t *testing.T) {
	service := newTestService()
	first, err := service.Register("John", "john@example.com", "long-enough-password")
	assert.NoError(t, err)
	_, err = service.Register("Jane", "jane@example.com", "long-enough-password")
	assert.NoError(t, err)

	_, err = service.UpdateProfile(first.ID, "John", "jane@example.com")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUpdateProfile_KeepingOwnEmailIsAllowed(t *testing.T) {
	service := newTestService()
	registered, err := service.Register("John", "john@example.com", "long-enough-password")
	assert.NoError(t, err)

	updated, err := service.UpdateProfile(registered.ID, "John D.", "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "John D.", updated.Name)
}
