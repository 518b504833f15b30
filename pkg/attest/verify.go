package attest

import (
	"encoding/base64"
	"fmt"

	"attest/internal/domain"
	cryptoinfra "attest/internal/infra/crypto"
)

// VerifyResult is the two-valued outcome of envelope verification. An
// invalid envelope is an ordinary result, never an error; Reason retains the
// diagnostic for the false case. Digest is the recomputed record digest in
// hex.
type VerifyResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Digest string `json:"digest"`
}

// VerifyEnvelope recomputes the digest of the embedded record and checks the
// embedded signature against the embedded public key. Malformed signature or
// key encodings in the untrusted envelope produce a false verdict with a
// reason; an error is returned only when the embedded record itself cannot
// be canonicalized, which is a malfunction distinguishable from tampering.
func VerifyEnvelope(env domain.Envelope) (VerifyResult, error) {
	canonical, err := cryptoinfra.CanonicalizeJSON(env.Data)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("canonicalize record: %w", err)
	}
	digest := cryptoinfra.Digest(canonical)
	result := VerifyResult{Digest: cryptoinfra.DigestHex(canonical)}

	sig, err := base64.StdEncoding.DecodeString(env.Signature)
	if err != nil {
		result.Reason = "malformed signature encoding"
		return result, nil
	}
	pub, err := base64.StdEncoding.DecodeString(env.PublicKey)
	if err != nil {
		result.Reason = "malformed public key encoding"
		return result, nil
	}

	if err := cryptoinfra.VerifySignature(digest, sig, pub); err != nil {
		result.Reason = err.Error()
		return result, nil
	}
	result.Valid = true
	return result, nil
}

// OpenAndVerify loads the envelope at path and verifies it. The embedded
// record is returned regardless of the verdict so the caller can inspect it.
func OpenAndVerify(path string) (domain.Record, VerifyResult, error) {
	env, err := LoadEnvelope(path)
	if err != nil {
		return nil, VerifyResult{}, err
	}
	rec, err := env.Record()
	if err != nil {
		return nil, VerifyResult{}, fmt.Errorf("%w: record in %s: %w", domain.ErrInvalidEnvelope, path, err)
	}
	result, err := VerifyEnvelope(env)
	if err != nil {
		return rec, VerifyResult{}, err
	}
	return rec, result, nil
}
