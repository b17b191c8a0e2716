// Package jwtmw provides JWT issuance, verification and the Gin
// middleware guarding authenticated routes.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shop_backend/internal/feature/auth/domain/entity"
)

// Issuer creates and verifies the signed token pairs used by the auth feature.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer creates a new Issuer with the provided secret and expirations.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueTokenPair creates a signed access/refresh token pair.
// Both tokens carry the same payload: the user ID under the "id" claim.
func (i *Issuer) IssueTokenPair(userID uint) (entity.TokenPair, error) {
	access, err := i.sign(userID, i.accessTTL)
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := i.sign(userID, i.refreshTTL)
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return entity.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyRefreshToken parses a refresh token, checks signature and expiry,
// and returns the user ID carried in the "id" claim.
func (i *Issuer) VerifyRefreshToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("unexpected claims type")
	}
	id, ok := claims["id"].(float64) // JWT numbers are decoded as float64
	if !ok || id <= 0 {
		return 0, fmt.Errorf("missing id claim")
	}
	return uint(id), nil
}

// sign creates one signed HS256 token carrying the user ID.
func (i *Issuer) sign(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}
