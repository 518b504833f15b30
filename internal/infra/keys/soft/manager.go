// Package soft implements a software keystore: an ed25519 oracle identity
// persisted as a JSON file with base64-encoded raw keys.
package soft

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"attest/internal/domain"
)

// Keypair is an oracle signing identity. The private key never leaves the
// process except through Save; the public key is freely distributable.
type Keypair struct {
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
}

// keystoreFile is the on-disk form: base64 of the 32-byte private seed and
// the 32-byte public key.
type keystoreFile struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

// Generate produces a fresh keypair from the system CSPRNG. Every call
// consumes fresh randomness; this is the only non-deterministic operation in
// the signing core.
func Generate() (Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Keypair{}, fmt.Errorf("generate keypair: %w", err)
	}
	return Keypair{Private: priv, Public: pub}, nil
}

// Save persists kp at path, overwriting any existing keystore. The whole
// file is written in one call; the keystore is readable by the owner only.
func Save(kp Keypair, path string) error {
	if len(kp.Private) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: private key length %d", domain.ErrInvalidKey, len(kp.Private))
	}
	doc := keystoreFile{
		PrivateKey: base64.StdEncoding.EncodeToString(kp.Private.Seed()),
		PublicKey:  base64.StdEncoding.EncodeToString(kp.Public),
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keystore: %w", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o600); err != nil {
		return fmt.Errorf("write keystore %s: %w", path, err)
	}
	return nil
}

// Load reads the keystore at path. A missing file, malformed JSON or
// base64, wrong decoded key lengths, and a stored public key that does not
// match the private key all fail with domain.ErrKeyLoad.
func Load(path string) (Keypair, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Keypair{}, fmt.Errorf("%w: read %s: %w", domain.ErrKeyLoad, path, err)
	}
	var doc keystoreFile
	if err := json.Unmarshal(payload, &doc); err != nil {
		return Keypair{}, fmt.Errorf("%w: decode %s: %w", domain.ErrKeyLoad, path, err)
	}

	seed, err := base64.StdEncoding.DecodeString(doc.PrivateKey)
	if err != nil {
		return Keypair{}, fmt.Errorf("%w: private key in %s: %w", domain.ErrKeyLoad, path, err)
	}
	if len(seed) != ed25519.SeedSize {
		return Keypair{}, fmt.Errorf("%w: private key in %s decodes to %d bytes, want %d",
			domain.ErrKeyLoad, path, len(seed), ed25519.SeedSize)
	}

	pub, err := base64.StdEncoding.DecodeString(doc.PublicKey)
	if err != nil {
		return Keypair{}, fmt.Errorf("%w: public key in %s: %w", domain.ErrKeyLoad, path, err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return Keypair{}, fmt.Errorf("%w: public key in %s decodes to %d bytes, want %d",
			domain.ErrKeyLoad, path, len(pub), ed25519.PublicKeySize)
	}

	priv := ed25519.NewKeyFromSeed(seed)
	if !bytes.Equal(priv.Public().(ed25519.PublicKey), pub) {
		return Keypair{}, fmt.Errorf("%w: public key in %s does not match the private key", domain.ErrKeyLoad, path)
	}
	return Keypair{Private: priv, Public: ed25519.PublicKey(pub)}, nil
}

// Ensure loads the keystore at path, generating and persisting a fresh one
// on first run. The oracle identity stays stable across restarts for as long
// as the file survives.
func Ensure(path string) (Keypair, error) {
	kp, err := Load(path)
	if err == nil {
		return kp, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Keypair{}, err
	}

	kp, err = Generate()
	if err != nil {
		return Keypair{}, err
	}
	if err := Save(kp, path); err != nil {
		return Keypair{}, err
	}
	slog.Info("keystore bootstrapped",
		"path", path,
		"public_key", base64.StdEncoding.EncodeToString(kp.Public))
	return kp, nil
}
