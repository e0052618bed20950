// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. Its UUID is assigned at construction and
// never changes; equality between users is defined solely by that UUID. A
// user exclusively owns its verification tokens: they are persisted and
// deleted together with the user.
type User struct {
	ID             uuid.UUID // Stable unique identifier, immutable after creation.
	FirstName      string
	LastName       string
	Email          string // Logical unique key, used for lookups.
	HashedPassword string // Salted digest, never the plaintext.
	SessionToken   string // Opaque session token; stored only, never interpreted here.
	Role           Role
	IsVerified     bool
	Tokens         []*VerificationToken // Owned collection, cascade persisted and deleted.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser constructs a user with a fresh UUID. All users are anonymous and
// unverified until their credentials are proved.
func NewUser(firstName, lastName, email string) *User {
	return &User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      RoleAnonymous,
	}
}

// HasRole reports whether the user currently holds the given role.
func (u *User) HasRole(role Role) bool {
	return u.Role == role
}

// Equal reports identity equality, which is defined solely by the UUID.
func (u *User) Equal(other *User) bool {
	return other != nil && u.ID == other.ID
}

// FullName returns "First Last", or an empty string when the first name is
// blank.
func (u *User) FullName() string {
	if strings.TrimSpace(u.FirstName) == "" {
		return ""
	}

	return u.FirstName + " " + u.LastName
}

// AddToken attaches a verification token to the user's owned collection.
func (u *User) AddToken(token *VerificationToken) {
	u.Tokens = append(u.Tokens, token)
}

// ActiveToken returns the user's active token of the given type, or nil when
// none exists. A token is active when it is neither verified nor expired at
// the given instant. The workflow relies on this to reuse tokens instead of
// minting duplicates, so a user never holds two active tokens of one type.
func (u *User) ActiveToken(tokenType TokenType, now time.Time) *VerificationToken {
	for _, token := range u.Tokens {
		if token.Type == tokenType && token.Active(now) {
			return token
		}
	}

	return nil
}
