package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenKindMismatch(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	refresh, err := svc.GenerateRefreshToken(userID)
	require.NoError(t, err)
	access, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)

	// A refresh token must not pass as an access token, and vice versa.
	_, err = svc.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenKind)

	_, err = svc.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute, 24*time.Hour)
	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestMalformedToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 24*time.Hour)

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenSignedWithDifferentSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, 24*time.Hour)
	verifier := NewTokenService("secret-b", time.Hour, 24*time.Hour)

	token, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
