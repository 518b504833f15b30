package attest

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"attest/internal/domain"
	cryptoinfra "attest/internal/infra/crypto"
)

// Key parsing helpers for callers that carry keys as hex or base64 text,
// e.g. CLI flags. Private keys are accepted in seed or expanded form.

func ParsePrivateKeyHex(value string) (ed25519.PrivateKey, error) {
	raw, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	return cryptoinfra.ParsePrivateKey(raw)
}

func ParsePrivateKeyBase64(value string) (ed25519.PrivateKey, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	return cryptoinfra.ParsePrivateKey(raw)
}

func ParsePublicKeyHex(value string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	return parsePublicKey(raw)
}

func ParsePublicKeyBase64(value string) (ed25519.PublicKey, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	return parsePublicKey(raw)
}

func parsePublicKey(raw []byte) (ed25519.PublicKey, error) {
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d",
			domain.ErrInvalidKey, ed25519.PublicKeySize, len(raw))
	}
	return append(ed25519.PublicKey(nil), raw...), nil
}
