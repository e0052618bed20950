package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_Deterministic(t *testing.T) {
	hasher := NewSHA256Hasher("unit-test-salt")
	userID := uuid.New()

	first, err := hasher.Hash("password123", userID)
	require.NoError(t, err)
	second, err := hasher.Hash("password123", userID)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same plaintext and user must always yield the same digest")
	assert.Len(t, first, 64, "hex-encoded SHA-256")
}

func TestSHA256Hasher_DistinctPasswordsDistinctDigests(t *testing.T) {
	hasher := NewSHA256Hasher("unit-test-salt")
	userID := uuid.New()

	a, err := hasher.Hash("password-one", userID)
	require.NoError(t, err)
	b, err := hasher.Hash("password-two", userID)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSHA256Hasher_SaltUniquePerUser(t *testing.T) {
	hasher := NewSHA256Hasher("unit-test-salt")

	a, err := hasher.Hash("same-password", uuid.New())
	require.NoError(t, err)
	b, err := hasher.Hash("same-password", uuid.New())
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "identical passwords must hash differently for different users")
}

func TestSHA256Hasher_EmptyPlaintextFailsFast(t *testing.T) {
	hasher := NewSHA256Hasher("unit-test-salt")

	_, err := hasher.Hash("", uuid.New())
	assert.Error(t, err)
}

func TestSHA256Hasher_Check(t *testing.T) {
	hasher := NewSHA256Hasher("unit-test-salt")
	userID := uuid.New()

	digest, err := hasher.Hash("password123", userID)
	require.NoError(t, err)

	assert.True(t, hasher.Check("password123", userID, digest))
	assert.False(t, hasher.Check("password124", userID, digest))
	assert.False(t, hasher.Check("password123", uuid.New(), digest))
	assert.False(t, hasher.Check("", userID, digest))
}
