package token

import (
	"testing"

	"identity/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Codec_RoundTrip(t *testing.T) {
	codec := NewBase64Codec()

	raw := "0f8fad5bd9cb469fa16570867728950e"
	encoded := codec.Encode(raw)
	require.NotEqual(t, raw, encoded)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestBase64Codec_EncodedFormIsURLSafe(t *testing.T) {
	codec := NewBase64Codec()

	encoded := codec.Encode(string([]byte{0xfb, 0xff, 0xfe, 0x3f}))
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
	assert.NotContains(t, encoded, "=")
}

func TestBase64Codec_MalformedInput(t *testing.T) {
	codec := NewBase64Codec()

	_, err := codec.Decode("not%%valid##base64")
	assert.ErrorIs(t, err, service.ErrMalformedToken)
}
