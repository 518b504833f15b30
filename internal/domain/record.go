package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Record is the structured payload being attested: a sentiment result or any
// other mapping of field names to JSON values. Values carry the generic
// forms produced by encoding/json with UseNumber: string, json.Number, bool,
// nil, map[string]any and []any.
//
// A record must not be mutated after it has been canonicalized; a signature
// computed before the mutation no longer covers the new state.
type Record map[string]any

// ParseRecord decodes a JSON object into a Record. Numbers are kept as
// json.Number so the canonical encoder controls their rendering instead of
// an intermediate float conversion. Trailing data after the object is
// rejected.
func ParseRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if rec == nil {
		return nil, errors.New("decode record: payload is not an object")
	}

	var extra any
	if err := dec.Decode(&extra); err != nil {
		if errors.Is(err, io.EOF) {
			return rec, nil
		}
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return nil, errors.New("decode record: trailing data")
}
