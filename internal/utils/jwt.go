package utils // package utils provides helpers for signing small client-held tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned when a token fails signature, algorithm or
// expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// SignHS256 signs claims with the shared secret.  The flash cookie uses
// it to carry pending messages across a redirect without server state.
func SignHS256(secret string, claims jwt.Claims) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret is empty")
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseHS256 verifies raw and decodes it into claims.  Only HS256 is
// accepted so a token cannot downgrade itself to "none".
func ParseHS256(secret, raw string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	return nil
}

// ExpiringClaims returns registered claims issued now and expiring after ttl.
func ExpiringClaims(now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}
