package domain

import "encoding/json"

// ComparisonReport explains how two records differ. The digest comparison is
// the headline verdict; the field diff is diagnostic only and never feeds
// cryptographic verification.
type ComparisonReport struct {
	DigestA string      `json:"digest_a"`
	DigestB string      `json:"digest_b"`
	Equal   bool        `json:"equal"`
	Fields  []FieldDiff `json:"differing_fields,omitempty"`
}

// FieldDiff is one top-level field whose value differs between two records.
// A and B hold the canonical JSON rendering of each side; a nil side means
// the field is absent from that record. Diffs are ordered lexicographically
// by field name.
type FieldDiff struct {
	Field string          `json:"field"`
	A     json.RawMessage `json:"a,omitempty"`
	B     json.RawMessage `json:"b,omitempty"`
}
