package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenTTL is the absolute lifetime of an issued access token.
const AccessTokenTTL = 30 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserAgent string `json:"user_agent,omitempty"`
}

// GenerateToken signs a token carrying the username as subject, a fresh
// uuid as token id and an absolute expiry. The signing key and algorithm
// come from process configuration, never from user input.
func GenerateToken(signingKey []byte, algorithm, username, userAgent string) (string, string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", "", fmt.Errorf("unknown signing algorithm %q", algorithm)
	}

	now := time.Now()
	jti := uuid.NewString()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
		UserAgent: userAgent,
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(signingKey)
	if err != nil {
		return "", "", fmt.Errorf("jwt.SignedString -> %w", err)
	}

	return token, jti, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(signingKey []byte, algorithm, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{algorithm}),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
