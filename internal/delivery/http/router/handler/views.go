package handler

import (
	"time"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the outward shape of a user. The password hash and session
// token never leave the service.
type userView struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// tokenView exposes token metadata only. The token value itself travels
// exclusively inside the verification email.
type tokenView struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	IsVerified bool      `json:"isVerified"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func newUserView(user *entity.User) userView {
	return userView{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Role:       user.Role.String(),
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

func newTokenView(token *entity.VerificationToken) tokenView {
	return tokenView{
		ID:         token.ID,
		Type:       token.Type.String(),
		IsVerified: token.IsVerified,
		ExpiresAt:  token.ExpiresAt,
	}
}
