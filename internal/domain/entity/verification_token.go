// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenType classifies what a verification token proves once consumed.
type TokenType string

const (
	// TokenTypeEmailVerification confirms ownership of an email address.
	TokenTypeEmailVerification TokenType = "emailVerification"
	// TokenTypeEmailRegistration confirms a newly registered account.
	TokenTypeEmailRegistration TokenType = "emailRegistration"
	// TokenTypeLostPassword authorizes a password reset.
	TokenTypeLostPassword TokenType = "lostPassword"
)

// String returns the string representation of the TokenType.
func (t TokenType) String() string {
	return string(t)
}

// IsValid checks if the TokenType is a valid value.
func (t TokenType) IsValid() bool {
	switch t {
	case TokenTypeEmailVerification, TokenTypeEmailRegistration, TokenTypeLostPassword:
		return true
	default:
		return false
	}
}

// VerificationToken is a single-use, typed, expiring credential owned by a
// User. The raw token value is persisted as-is and only ever leaves the
// system in its encoded text form. Tokens are never deleted by the workflow;
// a consumed or expired token simply becomes permanently unusable.
type VerificationToken struct {
	ID         uuid.UUID // Unique ID of this token record.
	UserID     uuid.UUID // Non-owning back-reference to the owning User, for lookup only.
	Token      string    // Opaque random token value, stored raw.
	Type       TokenType // What this token proves when consumed.
	IsVerified bool      // Single-use marker, set exactly once on successful consumption.
	ExpiresAt  time.Time // CreatedAt + the configured TTL.
	CreatedAt  time.Time // Timestamp of when the token was minted.
}

// NewVerificationToken mints a token of the given type for a user. The raw
// value is two concatenated UUIDs with the dashes stripped, which keeps it
// unguessable without being tied to any encoding concern.
func NewVerificationToken(userID uuid.UUID, tokenType TokenType, ttl time.Duration) *VerificationToken {
	now := time.Now()

	return &VerificationToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     generateTokenValue(),
		Type:      tokenType,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// Expired reports whether the token is past its TTL at the given instant.
// The boundary is inclusive: a token whose expiry equals now is expired.
func (t *VerificationToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Active reports whether the token can still be consumed: not yet verified
// and not expired.
func (t *VerificationToken) Active(now time.Time) bool {
	return !t.IsVerified && !t.Expired(now)
}

func generateTokenValue() string {
	raw := uuid.New().String() + uuid.New().String()

	return strings.ReplaceAll(raw, "-", "")
}
