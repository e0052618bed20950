package mail

import (
	"strings"
	"testing"
	"time"

	"identity/internal/domain/entity"
	"identity/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationLink(t *testing.T) {
	mail := service.VerificationMail{
		HostURL:      "https://accounts.example.com",
		EncodedToken: "YWJjZDEyMzQ",
	}

	link := VerificationLink(mail, "/password/reset")
	assert.Equal(t, "https://accounts.example.com/password/reset?token=YWJjZDEyMzQ", link)
}

func TestRenderBody_EmbedsLinkAndExpiry(t *testing.T) {
	expires := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	mail := service.VerificationMail{
		FirstName:    "Alice",
		EmailAddress: "alice@example.com",
		EncodedToken: "dG9rZW4",
		TokenType:    entity.TokenTypeLostPassword,
		ExpiresAt:    expires,
		HostURL:      "https://accounts.example.com",
	}

	body, err := renderBody(mail, contentByType[entity.TokenTypeLostPassword])
	require.NoError(t, err)

	assert.Contains(t, body, "Hello Alice,")
	assert.Contains(t, body, "https://accounts.example.com/password/reset?token=dG9rZW4")
	assert.Contains(t, body, expires.Format(time.RFC1123))
}

func TestRenderBody_FallsBackToEmailWhenNameMissing(t *testing.T) {
	mail := service.VerificationMail{
		EmailAddress: "alice@example.com",
		EncodedToken: "dG9rZW4",
		TokenType:    entity.TokenTypeEmailVerification,
		HostURL:      "https://accounts.example.com",
	}

	body, err := renderBody(mail, contentByType[entity.TokenTypeEmailVerification])
	require.NoError(t, err)

	assert.True(t, strings.Contains(body, "Hello alice@example.com,"))
}

func TestContentByType_CoversAllTokenTypes(t *testing.T) {
	for _, tokenType := range []entity.TokenType{
		entity.TokenTypeEmailVerification,
		entity.TokenTypeEmailRegistration,
		entity.TokenTypeLostPassword,
	} {
		_, ok := contentByType[tokenType]
		assert.True(t, ok, "missing mail content for %s", tokenType)
	}
}
