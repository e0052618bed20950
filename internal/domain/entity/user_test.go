package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_StartsAnonymousAndUnverified(t *testing.T) {
	user := NewUser("Alice", "Smith", "alice@example.com")

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, RoleAnonymous, user.Role)
	assert.False(t, user.IsVerified)
	assert.True(t, user.HasRole(RoleAnonymous))
	assert.False(t, user.HasRole(RoleAuthenticated))
}

func TestUser_Equal_DefinedSolelyByID(t *testing.T) {
	a := NewUser("Alice", "Smith", "alice@example.com")
	b := NewUser("Alice", "Smith", "alice@example.com")

	assert.False(t, a.Equal(b), "distinct UUIDs must not compare equal")
	assert.False(t, a.Equal(nil))

	clone := &User{ID: a.ID, Email: "other@example.com"}
	assert.True(t, a.Equal(clone), "same UUID compares equal regardless of attributes")
}

func TestUser_FullName(t *testing.T) {
	user := NewUser("Alice", "Smith", "alice@example.com")
	assert.Equal(t, "Alice Smith", user.FullName())

	user.FirstName = "  "
	assert.Equal(t, "", user.FullName())
}

func TestUser_ActiveToken_FiltersByTypeAndState(t *testing.T) {
	now := time.Now()
	user := NewUser("Alice", "Smith", "alice@example.com")

	verification := NewVerificationToken(user.ID, TokenTypeEmailVerification, time.Hour)
	lostPassword := NewVerificationToken(user.ID, TokenTypeLostPassword, time.Hour)
	user.AddToken(verification)
	user.AddToken(lostPassword)

	require.Equal(t, verification, user.ActiveToken(TokenTypeEmailVerification, now))
	require.Equal(t, lostPassword, user.ActiveToken(TokenTypeLostPassword, now))
	assert.Nil(t, user.ActiveToken(TokenTypeEmailRegistration, now))
}

func TestUser_ActiveToken_IgnoresConsumedAndExpired(t *testing.T) {
	now := time.Now()
	user := NewUser("Alice", "Smith", "alice@example.com")

	consumed := NewVerificationToken(user.ID, TokenTypeLostPassword, time.Hour)
	consumed.IsVerified = true
	expired := NewVerificationToken(user.ID, TokenTypeLostPassword, time.Hour)
	expired.ExpiresAt = now.Add(-time.Minute)
	user.AddToken(consumed)
	user.AddToken(expired)

	assert.Nil(t, user.ActiveToken(TokenTypeLostPassword, now))

	fresh := NewVerificationToken(user.ID, TokenTypeLostPassword, time.Hour)
	user.AddToken(fresh)
	assert.Equal(t, fresh, user.ActiveToken(TokenTypeLostPassword, now))
}
