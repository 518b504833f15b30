package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"attest/internal/domain"
)

// ParsePrivateKey normalizes raw private key bytes into an ed25519 private
// key. Both the 32-byte seed form (the persisted representation) and the
// 64-byte expanded form are accepted.
func ParsePrivateKey(raw []byte) (ed25519.PrivateKey, error) {
	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return append(ed25519.PrivateKey(nil), raw...), nil
	default:
		return nil, fmt.Errorf("%w: ed25519 private key must be %d or %d bytes, got %d",
			domain.ErrInvalidKey, ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}

// Sign produces an ed25519 signature over a record digest. The scheme is
// deterministic at sign time: no randomness is consumed, so there is no
// nonce to reuse.
func Sign(digest [DigestSize]byte, privateKey []byte) ([]byte, error) {
	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(key, digest[:]), nil
}

// VerifySignature checks sig over digest with pubKey. A nil return means the
// signature is valid; the error otherwise carries the failure reason.
// Structurally invalid signatures and keys are verification failures like
// any other. The digest is handed to the scheme as-is; callers never compare
// digests themselves.
func VerifySignature(digest [DigestSize]byte, sig []byte, pubKey []byte) error {
	if len(pubKey) != ed25519.PublicKeySize {
		return fmt.Errorf("invalid ed25519 public key length: %d", len(pubKey))
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("invalid ed25519 signature length: %d", len(sig))
	}
	if !ed25519.Verify(ed25519.PublicKey(pubKey), digest[:], sig) {
		return errors.New("signature verification failed")
	}
	return nil
}
