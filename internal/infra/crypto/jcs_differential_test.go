package crypto

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/gowebpki/jcs"
)

// The canonical encoder is pinned to RFC 8785. Cross-check it against an
// independent implementation so a formatting drift here cannot silently
// produce signatures other verifiers reject.
func TestCanonicalizeJSON_MatchesReferenceJCS(t *testing.T) {
	inputs := [][]byte{
		[]byte(`{"score": 0.87, "label": "POSITIVE", "id": "1"}`),
		[]byte(`{"b": [1, 2.5, -3], "a": {"y": null, "x": true}}`),
		[]byte(`{"n": [0, 1e2, 2.5e-3, 0.0000025, 1e21, 1.5e22]}`),
		[]byte(`{"s": "tab\tquote\" café \u0007"}`),
		[]byte(`{"empty": {}, "list": []}`),
	}

	vectorFiles, err := filepath.Glob(filepath.Join("testdata", "record_*.json"))
	if err != nil {
		t.Fatalf("glob vectors: %v", err)
	}
	sort.Strings(vectorFiles)
	for _, path := range vectorFiles {
		inputs = append(inputs, readFile(t, path))
	}

	for i, input := range inputs {
		ours, err := CanonicalizeJSON(input)
		if err != nil {
			t.Fatalf("case %d: canonicalize: %v", i, err)
		}
		reference, err := jcs.Transform(input)
		if err != nil {
			t.Fatalf("case %d: reference transform: %v", i, err)
		}
		if string(ours) != string(reference) {
			t.Fatalf("case %d: canonical form diverges from reference\n ours: %s\n ref:  %s", i, ours, reference)
		}
	}
}
