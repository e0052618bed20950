// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when persisting a user collides with an
// existing email address.
var ErrDuplicateUser = errors.New("user already exists")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Save persists the user together with its owned verification token
	// collection (upsert with cascade).
	Save(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by email address, including the
	// owned token collection.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID, including the
	// owned token collection.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
