package attest

import (
	"encoding/json"
	"fmt"
	"os"

	"attest/internal/domain"
)

// SaveEnvelope writes env at path as a single whole-file write. The record
// bytes inside Data are emitted token-for-token as they were signed; only
// layout whitespace is added.
func SaveEnvelope(env domain.Envelope, path string) error {
	payload, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write envelope %s: %w", path, err)
	}
	return nil
}

// LoadEnvelope reads a signed-record file.
func LoadEnvelope(path string) (domain.Envelope, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("read envelope %s: %w", path, err)
	}
	var env domain.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: decode %s: %w", domain.ErrInvalidEnvelope, path, err)
	}
	if len(env.Data) == 0 || env.Signature == "" || env.PublicKey == "" {
		return domain.Envelope{}, fmt.Errorf("%w: %s is missing data, signature or public_key", domain.ErrInvalidEnvelope, path)
	}
	return env, nil
}

// LoadRecord reads a bare record file.
func LoadRecord(path string) (domain.Record, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", path, err)
	}
	rec, err := domain.ParseRecord(payload)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", path, err)
	}
	return rec, nil
}
