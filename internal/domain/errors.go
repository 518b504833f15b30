package domain

import "errors"

var (
	// ErrEncoding marks a record value the canonical encoder cannot render
	// deterministically (NaN or Infinity floats, non-JSON types).
	ErrEncoding = errors.New("record cannot be canonicalized")

	// ErrKeyLoad marks a keystore that is missing, malformed, or holds keys
	// of the wrong length.
	ErrKeyLoad = errors.New("keystore load failed")

	// ErrInvalidKey marks key bytes that do not form a valid ed25519 key.
	ErrInvalidKey = errors.New("invalid signing key")

	// ErrInvalidEnvelope marks a signed-record file missing one of its
	// required fields or carrying undecodable JSON.
	ErrInvalidEnvelope = errors.New("invalid envelope")
)
