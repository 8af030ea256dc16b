package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

type tokenClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &tokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *tokenService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.generate(userID, tokenKindAccess, s.accessTTL)
}

func (s *tokenService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.generate(userID, tokenKindRefresh, s.refreshTTL)
}

func (s *tokenService) ValidateAccessToken(token string) (uuid.UUID, error) {
	return s.validate(token, tokenKindAccess)
}

func (s *tokenService) ValidateRefreshToken(token string) (uuid.UUID, error) {
	return s.validate(token, tokenKindRefresh)
}

func (s *tokenService) generate(userID uuid.UUID, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) validate(tokenString, kind string) (uuid.UUID, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenInvalid
	}

	if claims.Kind != kind {
		return uuid.Nil, ErrWrongTokenKind
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return userID, nil
}
