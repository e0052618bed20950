package service

import "errors"

// ErrMalformedToken is returned by Decode for input that is not valid
// encoded-token text.
var ErrMalformedToken = errors.New("malformed token encoding")

// TokenCodec translates between the raw token value persisted in storage and
// the text-safe form exchanged with clients. The encoding is reversible;
// tokens are never persisted in their encoded form.
type TokenCodec interface {
	// Encode renders a raw token value as text safe for URLs and email links.
	Encode(raw string) string

	// Decode recovers the raw token value. Malformed input yields
	// ErrMalformedToken.
	Decode(encoded string) (string, error)
}
