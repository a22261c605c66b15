// Package device issues and validates anonymous device tokens. A device
// registers once, receives a JWT carrying a generated device ID, and presents
// it on favourites endpoints. There are no accounts and no credentials.
package device

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims carried by a device token.
type Claims struct {
	DeviceID string `json:"device_id"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies device tokens.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager creates a token manager.
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), expiry: expiry}
}

// Issue generates a fresh device ID and returns it with its signed token.
func (m *TokenManager) Issue() (string, string, error) {
	deviceID := uuid.NewString()

	now := time.Now()
	claims := Claims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   deviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign device token: %w", err)
	}

	return deviceID, token, nil
}

// Validate parses a token and returns its device ID.
func (m *TokenManager) Validate(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid device token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.DeviceID == "" {
		return "", errors.New("invalid device token")
	}

	return claims.DeviceID, nil
}
