package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationToken_GeneratesOpaqueValue(t *testing.T) {
	user := NewUser("Alice", "Smith", "alice@example.com")

	first := NewVerificationToken(user.ID, TokenTypeEmailVerification, time.Hour)
	second := NewVerificationToken(user.ID, TokenTypeEmailVerification, time.Hour)

	require.NotEmpty(t, first.Token)
	assert.NotEqual(t, first.Token, second.Token, "token values must be unguessable and unique")
	assert.Equal(t, user.ID, first.UserID)
	assert.False(t, first.IsVerified)
	assert.Equal(t, first.CreatedAt.Add(time.Hour), first.ExpiresAt)
}

func TestVerificationToken_Expired_InclusiveBoundary(t *testing.T) {
	token := NewVerificationToken(NewUser("A", "B", "a@b.test").ID, TokenTypeLostPassword, time.Hour)

	assert.False(t, token.Expired(token.ExpiresAt.Add(-time.Second)))
	assert.True(t, token.Expired(token.ExpiresAt), "a token expiring exactly now is expired")
	assert.True(t, token.Expired(token.ExpiresAt.Add(time.Second)))
}

func TestVerificationToken_Active(t *testing.T) {
	now := time.Now()
	token := NewVerificationToken(NewUser("A", "B", "a@b.test").ID, TokenTypeEmailRegistration, time.Hour)

	assert.True(t, token.Active(now))

	token.IsVerified = true
	assert.False(t, token.Active(now), "a consumed token is never active")

	token.IsVerified = false
	token.ExpiresAt = now
	assert.False(t, token.Active(now), "an expired token is never active")
}

func TestTokenType_IsValid(t *testing.T) {
	assert.True(t, TokenTypeEmailVerification.IsValid())
	assert.True(t, TokenTypeEmailRegistration.IsValid())
	assert.True(t, TokenTypeLostPassword.IsValid())
	assert.False(t, TokenType("sessionRefresh").IsValid())
}
