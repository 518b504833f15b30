package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestSize is the length of a record digest in bytes.
const DigestSize = sha256.Size

// Digest hashes canonical bytes. Digests are recomputed on demand and never
// cached across record mutation.
func Digest(canonical []byte) [DigestSize]byte {
	return sha256.Sum256(canonical)
}

// DigestHex returns the lowercase hex form used in reports and CLI output.
func DigestHex(canonical []byte) string {
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// DigestRecord canonicalizes raw record JSON and hashes the result.
func DigestRecord(raw []byte) ([DigestSize]byte, error) {
	canonical, err := CanonicalizeJSON(raw)
	if err != nil {
		return [DigestSize]byte{}, err
	}
	return Digest(canonical), nil
}
