package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens. The registered subject
// carries the profile ID.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssuedToken is a signed access token together with the identifiers needed
// to revoke it.
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// VerifiedToken is the result of a successful verification.
type VerifiedToken struct {
	UserID    uuid.UUID
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying access tokens.
type TokenService interface {
	// Issue signs a token for the profile with the configured lifetime.
	Issue(userID uuid.UUID, email string) (*IssuedToken, error)

	// Verify checks signature, expiry, issuer and audience and returns the subject.
	Verify(tokenString string) (*VerifiedToken, error)
}
