package crypto

import (
	"bytes"
	"encoding/json"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: canonicalization only depends on the field set, never on the
// order fields appear in the source document.
func TestCanonicalizationOrderInvariance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("key order does not change canonical bytes", prop.ForAll(
		func(keys []string, values []string) bool {
			fields := make(map[string]string)
			for i := 0; i < len(keys) && i < len(values); i++ {
				if keys[i] != "" {
					fields[keys[i]] = values[i]
				}
			}
			if len(fields) == 0 {
				return true
			}

			sorted := make([]string, 0, len(fields))
			for k := range fields {
				sorted = append(sorted, k)
			}
			sort.Strings(sorted)

			ascending := buildDoc(t, sorted, fields)
			descending := buildDoc(t, reversed(sorted), fields)

			canonAsc, err1 := CanonicalizeJSON(ascending)
			canonDesc, err2 := CanonicalizeJSON(descending)
			if err1 != nil || err2 != nil {
				return false
			}
			return bytes.Equal(canonAsc, canonDesc)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

// Property: canonical bytes and digests are stable across repeated calls.
func TestCanonicalizationDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("repeated canonicalization yields identical digests", prop.ForAll(
		func(keys []string, nums []float64) bool {
			record := make(map[string]any)
			for i := 0; i < len(keys) && i < len(nums); i++ {
				if keys[i] != "" {
					record[keys[i]] = nums[i]
				}
			}

			first, err1 := CanonicalizeAny(record)
			second, err2 := CanonicalizeAny(record)
			if err1 != nil || err2 != nil {
				return false
			}
			return bytes.Equal(first, second) && DigestHex(first) == DigestHex(second)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.Float64Range(-1e9, 1e9)),
	))

	properties.TestingRun(t)
}

func buildDoc(t *testing.T, order []string, fields map[string]string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			t.Fatalf("marshal key: %v", err)
		}
		value, err := json.Marshal(fields[k])
		if err != nil {
			t.Fatalf("marshal value: %v", err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
