// Package token provides the concrete codec for the opaque token values
// exchanged with clients.
package token

import (
	"encoding/base64"

	"identity/internal/domain/service"
)

// base64Codec encodes raw token values with URL-safe base64 so they survive
// query strings and email links unescaped. Raw values are what storage holds;
// only the encoded form travels.
type base64Codec struct{}

// NewBase64Codec is the constructor for base64Codec.
// It returns the implementation as a service.TokenCodec interface.
func NewBase64Codec() service.TokenCodec {
	return &base64Codec{}
}

// Encode renders the raw token as URL-safe base64 without padding.
func (c *base64Codec) Encode(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// Decode recovers the raw token value, mapping any malformed input to
// service.ErrMalformedToken.
func (c *base64Codec) Decode(encoded string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", service.ErrMalformedToken
	}

	return string(raw), nil
}
