package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientalgroup/internal/config"
	"orientalgroup/internal/domain"
	apperrors "orientalgroup/internal/errors"
)

func newTestTokenManager(ttl time.Duration) *TokenManager {
	return NewTokenManager(config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  ttl,
	})
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := newTestTokenManager(time.Hour)

	token, err := tm.Issue(&domain.User{ID: 42, Email: "admin@orientalgroup.ma", Role: domain.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@orientalgroup.ma", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	tm := newTestTokenManager(-time.Minute)

	token, err := tm.Issue(&domain.User{ID: 1, Email: "user@example.com", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	tm := newTestTokenManager(time.Hour)
	other := NewTokenManager(config.AuthConfig{JWTSecret: "other-secret", TokenTTL: time.Hour})

	token, err := tm.Issue(&domain.User{ID: 1, Email: "user@example.com", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = other.Parse(token)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	tm := newTestTokenManager(time.Hour)

	_, err := tm.Parse("not.a.token")
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}
