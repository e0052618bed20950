// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"identity/internal/domain/service"
	"identity/internal/errors"

	"github.com/google/uuid"
)

// sha256Hasher is a concrete implementation of the PasswordHasher interface.
// The digest is a SHA-256 over the plaintext and a per-user salt built from
// the user's UUID plus a process-wide secret, making it deterministic per
// (plaintext, user) while distinct across users.
type sha256Hasher struct {
	secretSalt string
}

// NewSHA256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSHA256Hasher(secretSalt string) service.PasswordHasher {
	return &sha256Hasher{secretSalt: secretSalt}
}

// Hash digests the plaintext with the user-derived salt. An empty plaintext
// is a caller contract violation and fails immediately.
func (h *sha256Hasher) Hash(plaintext string, userID uuid.UUID) (string, error) {
	if plaintext == "" {
		return "", errors.New("plaintext password must not be empty")
	}

	sum := sha256.Sum256([]byte(plaintext + userID.String() + h.secretSalt))

	return hex.EncodeToString(sum[:]), nil
}

// Check re-derives the digest and compares it with the stored one in
// constant time.
func (h *sha256Hasher) Check(plaintext string, userID uuid.UUID, hashed string) bool {
	derived, err := h.Hash(plaintext, userID)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(derived), []byte(hashed)) == 1
}
