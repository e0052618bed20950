// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "github.com/google/uuid"

// PasswordHasher produces the stored credential digest. The digest is
// deterministic: the same plaintext for the same user always yields the same
// value, which is what allows later comparison on login. The per-user salt is
// derived from the user's UUID combined with a process-wide secret, so equal
// passwords still hash differently across users.
type PasswordHasher interface {
	// Hash digests the plaintext with the user-derived salt. An empty
	// plaintext is a caller contract violation and fails immediately.
	Hash(plaintext string, userID uuid.UUID) (string, error)

	// Check re-derives the digest for the plaintext and compares it with the
	// stored one.
	Check(plaintext string, userID uuid.UUID, hashed string) bool
}
