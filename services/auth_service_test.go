package services

import (
	"testing"
	"time"

	"github.com/mustafa3m/TastyTable-final-1/pkg/apperr"
	"github.com/mustafa3m/TastyTable-final-1/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(db)

	user, err := svc.Register("u1", "P@ssw0rd!", "u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.Username)
	assert.Equal(t, "User", user.Role)
	assert.NotEqual(t, "P@ssw0rd!", user.PasswordHash)

	token, logged, err := svc.Login("u1", "P@ssw0rd!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(db)

	_, err := svc.Register("u2", "Correct$123", "u2@example.com")
	require.NoError(t, err)

	_, _, err = svc.Login("u2", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_LoginUnknownUser(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(db)

	_, _, err := svc.Login("nobody", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_RegisterDuplicate(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(db)

	_, err := svc.Register("u3", "secret123", "u3@example.com")
	require.NoError(t, err)

	_, err = svc.Register("u3", "secret123", "other@example.com")
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Register("other", "secret123", "u3@example.com")
	require.ErrorIs(t, err, apperr.ErrValidation)
}
