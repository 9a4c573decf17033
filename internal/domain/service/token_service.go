package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pulse/internal/errors"
)

// Token validation failures, classified for server-side use. The HTTP layer
// collapses all of them into one generic 401 so callers cannot distinguish
// an expired token from a tampered one.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Name   string    `json:"name"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate signs a new token for the given user with the configured TTL.
	Generate(userID uuid.UUID, name string) (string, error)

	// Validate checks a token string and returns its claims. Failures wrap
	// one of the classification sentinels above.
	Validate(tokenString string) (*Claims, error)
}
