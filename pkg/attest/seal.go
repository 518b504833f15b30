// Package attest is the client surface of the record-integrity core:
// sealing records into signed envelopes, verifying envelopes, and explaining
// why two record variants differ.
package attest

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"attest/internal/domain"
	cryptoinfra "attest/internal/infra/crypto"
)

// Seal canonicalizes record JSON, hashes it, signs the digest, and bundles
// record, signature and public key into an envelope. The public key is
// derived from the private key rather than supplied separately, so the
// embedded pair can never disagree. The record bytes are carried into the
// envelope verbatim.
func Seal(record json.RawMessage, privateKey ed25519.PrivateKey) (domain.Envelope, error) {
	if _, err := domain.ParseRecord(record); err != nil {
		return domain.Envelope{}, err
	}
	key, err := cryptoinfra.ParsePrivateKey(privateKey)
	if err != nil {
		return domain.Envelope{}, err
	}

	digest, err := cryptoinfra.DigestRecord(record)
	if err != nil {
		return domain.Envelope{}, err
	}
	sig, err := cryptoinfra.Sign(digest, key)
	if err != nil {
		return domain.Envelope{}, err
	}

	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return domain.Envelope{}, fmt.Errorf("%w: cannot derive public key", domain.ErrInvalidKey)
	}
	return domain.Envelope{
		Data:      append(json.RawMessage(nil), record...),
		Signature: base64.StdEncoding.EncodeToString(sig),
		PublicKey: base64.StdEncoding.EncodeToString(pub),
	}, nil
}
