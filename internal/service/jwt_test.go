package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaron-Ontoyin/enerlytics-backend/config"
	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
)

func newJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:             "test-secret",
		AccessExpireHours:  1,
		RefreshExpireHours: 24,
	})
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newJWTService()

	token, err := svc.GenerateAccessToken("user-1")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token, TokenTypeAccess)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.JTI)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_TokenTypeIsEnforced(t *testing.T) {
	svc := newJWTService()

	refresh, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(refresh, TokenTypeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTokenType)

	claims, err := svc.ValidateToken(refresh, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newJWTService()
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpireHours: 1, RefreshExpireHours: 24})

	token, err := svc.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = other.ValidateToken(token, TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWTService_EachTokenHasUniqueJTI(t *testing.T) {
	svc := newJWTService()

	first, err := svc.GenerateAccessToken("user-1")
	require.NoError(t, err)
	second, err := svc.GenerateAccessToken("user-1")
	require.NoError(t, err)

	c1, err := svc.ValidateToken(first, TokenTypeAccess)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(second, TokenTypeAccess)
	require.NoError(t, err)

	assert.NotEqual(t, c1.JTI, c2.JTI)
}
