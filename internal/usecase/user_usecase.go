// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"identity/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=35"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user and the registration token
// that was mailed to them.
type RegisterOutput struct {
	User  *entity.User
	Token *entity.VerificationToken
}

// UserUsecase defines the interface for account-lifecycle operations.
// This is the contract the delivery layer depends on.
type UserUsecase interface {
	// RegisterUser creates an anonymous, unverified account with a hashed
	// password, then issues and mails an email-registration token.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
}
