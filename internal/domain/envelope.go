package domain

import "encoding/json"

// Envelope bundles a record with the oracle signature that attests it. Data
// holds the record JSON verbatim so that canonicalization at verify time
// operates on exactly the structure that was signed; Signature and PublicKey
// are base64 over the raw 64-byte signature and 32-byte ed25519 public key.
type Envelope struct {
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
	PublicKey string          `json:"public_key"`
}

// Record decodes the embedded record.
func (e Envelope) Record() (Record, error) {
	return ParseRecord(e.Data)
}
