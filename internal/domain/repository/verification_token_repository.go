// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is a domain-specific error returned when a verification
// token is not found.
var ErrTokenNotFound = errors.New("verification token not found")

// VerificationTokenRepository defines lookup operations for verification
// tokens. Tokens are written only through the owning user's Save (cascade),
// so this contract is read-only.
type VerificationTokenRepository interface {
	// FindByToken retrieves a token record by its raw (decoded) value.
	FindByToken(ctx context.Context, rawToken string) (*entity.VerificationToken, error)

	// FindByID retrieves a token record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VerificationToken, error)
}
