package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptyToken   = errors.New("empty token")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenExpiry extracts the expiry claim from a JWT without verifying the
// signature. The client never validates backend tokens, it only peeks at
// expiry to refresh proactively instead of burning a round trip on a 401.
func TokenExpiry(tokenString string) (time.Time, error) {
	if tokenString == "" {
		return time.Time{}, ErrEmptyToken
	}

	parser := jwt.NewParser()
	claims := &jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrInvalidToken
	}

	return claims.ExpiresAt.Time, nil
}

// TokenIsExpired reports whether tokenString is a parseable JWT whose
// expiry has passed. Opaque or malformed tokens report false: they are
// sent as-is and the 401 handling covers them.
func TokenIsExpired(tokenString string, now time.Time) bool {
	expiry, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return expiry.Before(now)
}
