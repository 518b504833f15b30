package attest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attest/internal/domain"
	"attest/internal/infra/keys/soft"
)

func TestSealProducesVerifiableEnvelope(t *testing.T) {
	kp, err := soft.Generate()
	require.NoError(t, err)

	record := json.RawMessage(`{"id": "1", "label": "POSITIVE", "score": 0.87}`)
	env, err := Seal(record, kp.Private)
	require.NoError(t, err)
	assert.JSONEq(t, string(record), string(env.Data))

	result, err := VerifyEnvelope(env)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Reason)
	assert.Len(t, result.Digest, 64)
}

func TestSealDerivesPublicKeyFromPrivate(t *testing.T) {
	kp, err := soft.Generate()
	require.NoError(t, err)

	env, err := Seal(json.RawMessage(`{"id": "1"}`), kp.Private)
	require.NoError(t, err)

	embedded, err := ParsePublicKeyBase64(env.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, kp.Public, embedded)
}

func TestSealAcceptsSeedForm(t *testing.T) {
	kp, err := soft.Generate()
	require.NoError(t, err)

	fromSeed, err := Seal(json.RawMessage(`{"id": "1"}`), kp.Private.Seed())
	require.NoError(t, err)
	fromExpanded, err := Seal(json.RawMessage(`{"id": "1"}`), kp.Private)
	require.NoError(t, err)
	assert.Equal(t, fromExpanded.Signature, fromSeed.Signature)
}

func TestSealRejectsBadInput(t *testing.T) {
	kp, err := soft.Generate()
	require.NoError(t, err)

	_, err = Seal(json.RawMessage(`[1, 2, 3]`), kp.Private)
	assert.Error(t, err, "non-object records are rejected")

	_, err = Seal(json.RawMessage(`{"id": "1"}`), []byte("short"))
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}

// The end-to-end scenario: a sealed sentiment record verifies, a tampered
// copy fails verification, and the comparison pinpoints the changed field.
func TestTamperedEnvelopeFailsAndDiffExplainsWhy(t *testing.T) {
	dir := t.TempDir()
	kp, err := soft.Ensure(filepath.Join(dir, "oracle_keypair.json"))
	require.NoError(t, err)

	original := json.RawMessage(`{"id": "1", "label": "POSITIVE", "score": 0.87}`)
	env, err := Seal(original, kp.Private)
	require.NoError(t, err)

	sealedPath := filepath.Join(dir, "signed_sentiment.json")
	require.NoError(t, SaveEnvelope(env, sealedPath))

	rec, result, err := OpenAndVerify(sealedPath)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "1", rec["id"])

	// Flip the label and re-save without re-signing.
	tampered := env
	tampered.Data = json.RawMessage(`{"id": "1", "label": "NEGATIVE", "score": 0.87}`)
	tamperedPath := filepath.Join(dir, "signed_sentiment_tampered.json")
	require.NoError(t, SaveEnvelope(tampered, tamperedPath))

	tamperedRec, result, err := OpenAndVerify(tamperedPath)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "signature verification failed", result.Reason)
	assert.Equal(t, "NEGATIVE", tamperedRec["label"], "record is returned even when invalid")

	originalRec, err := domain.ParseRecord(original)
	require.NoError(t, err)
	report, err := Compare(originalRec, tamperedRec)
	require.NoError(t, err)
	assert.False(t, report.Equal)
	require.Len(t, report.Fields, 1)
	assert.Equal(t, "label", report.Fields[0].Field)
	assert.Equal(t, `"POSITIVE"`, string(report.Fields[0].A))
	assert.Equal(t, `"NEGATIVE"`, string(report.Fields[0].B))
}

func TestVerifyEnvelopeMalformedFieldsAreFalseNotFatal(t *testing.T) {
	kp, err := soft.Generate()
	require.NoError(t, err)
	env, err := Seal(json.RawMessage(`{"id": "1"}`), kp.Private)
	require.NoError(t, err)

	badSig := env
	badSig.Signature = "%%% not base64 %%%"
	result, err := VerifyEnvelope(badSig)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "malformed signature encoding", result.Reason)

	badKey := env
	badKey.PublicKey = "%%% not base64 %%%"
	result, err = VerifyEnvelope(badKey)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "malformed public key encoding", result.Reason)

	shortKey := env
	shortKey.PublicKey = "c2hvcnQ=" // base64("short")
	result, err = VerifyEnvelope(shortKey)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Reason, "public key length")
}

func TestVerifyEnvelopeUnencodableRecordIsAnError(t *testing.T) {
	env := domain.Envelope{
		Data:      json.RawMessage(`{"broken":`),
		Signature: "AA==",
		PublicKey: "AA==",
	}
	_, err := VerifyEnvelope(env)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEncoding)
}

func TestEnvelopeSaveLoadIdempotence(t *testing.T) {
	kp, err := soft.Generate()
	require.NoError(t, err)

	// Awkward key order and float formatting must survive the round trip
	// byte-for-byte at the token level.
	record := json.RawMessage(`{"score": 0.87, "id": "1", "nested": {"z": 1, "a": [true, null]}}`)
	env, err := Seal(record, kp.Private)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "envelope.json")
	require.NoError(t, SaveEnvelope(env, path))

	loaded, err := LoadEnvelope(path)
	require.NoError(t, err)
	assert.Equal(t, env.Signature, loaded.Signature)
	assert.Equal(t, env.PublicKey, loaded.PublicKey)
	assert.JSONEq(t, string(env.Data), string(loaded.Data))

	result, err := VerifyEnvelope(loaded)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	// Saving the loaded envelope again changes nothing.
	path2 := filepath.Join(t.TempDir(), "envelope2.json")
	require.NoError(t, SaveEnvelope(loaded, path2))
	reloaded, err := LoadEnvelope(path2)
	require.NoError(t, err)
	assert.Equal(t, loaded, reloaded)
}

func TestLoadEnvelopeFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadEnvelope(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	truncated := filepath.Join(dir, "truncated.json")
	require.NoError(t, os.WriteFile(truncated, []byte(`{"data": {"id": "1"}`), 0o644))
	_, err = LoadEnvelope(truncated)
	assert.ErrorIs(t, err, domain.ErrInvalidEnvelope)

	missingField := filepath.Join(dir, "missing_field.json")
	require.NoError(t, os.WriteFile(missingField, []byte(`{"data": {"id": "1"}, "signature": "AA=="}`), 0o644))
	_, err = LoadEnvelope(missingField)
	assert.ErrorIs(t, err, domain.ErrInvalidEnvelope)
}
