package attest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"attest/internal/domain"
	cryptoinfra "attest/internal/infra/crypto"
)

// Compare computes both records' digests for the headline equality verdict
// and walks the union of their top-level fields, reporting every field whose
// value differs. A field present on one side only counts as differing. The
// report order is lexicographic by field name, stable across runs.
func Compare(a, b domain.Record) (domain.ComparisonReport, error) {
	canonA, err := cryptoinfra.CanonicalizeRecord(a)
	if err != nil {
		return domain.ComparisonReport{}, fmt.Errorf("canonicalize first record: %w", err)
	}
	canonB, err := cryptoinfra.CanonicalizeRecord(b)
	if err != nil {
		return domain.ComparisonReport{}, fmt.Errorf("canonicalize second record: %w", err)
	}

	report := domain.ComparisonReport{
		DigestA: cryptoinfra.DigestHex(canonA),
		DigestB: cryptoinfra.DigestHex(canonB),
	}
	report.Equal = report.DigestA == report.DigestB

	keys := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
		seen[k] = true
	}
	for k := range b {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		va, inA := a[k]
		vb, inB := b[k]

		var ca, cb []byte
		if inA {
			if ca, err = cryptoinfra.CanonicalizeAny(va); err != nil {
				return domain.ComparisonReport{}, fmt.Errorf("field %q in first record: %w", k, err)
			}
		}
		if inB {
			if cb, err = cryptoinfra.CanonicalizeAny(vb); err != nil {
				return domain.ComparisonReport{}, fmt.Errorf("field %q in second record: %w", k, err)
			}
		}
		if inA && inB && bytes.Equal(ca, cb) {
			continue
		}
		report.Fields = append(report.Fields, domain.FieldDiff{
			Field: k,
			A:     json.RawMessage(ca),
			B:     json.RawMessage(cb),
		})
	}
	return report, nil
}

// CompareEnvelopes compares the records embedded in two envelopes.
func CompareEnvelopes(a, b domain.Envelope) (domain.ComparisonReport, error) {
	recA, err := a.Record()
	if err != nil {
		return domain.ComparisonReport{}, fmt.Errorf("%w: first record: %w", domain.ErrInvalidEnvelope, err)
	}
	recB, err := b.Record()
	if err != nil {
		return domain.ComparisonReport{}, fmt.Errorf("%w: second record: %w", domain.ErrInvalidEnvelope, err)
	}
	return Compare(recA, recB)
}
