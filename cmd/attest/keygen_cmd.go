package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"attest/internal/config"
	"attest/internal/infra/keys/soft"
)

type keygenOutput struct {
	Keystore        string `json:"keystore"`
	PublicKeyBase64 string `json:"public_key_base64"`
	PublicKeyHex    string `json:"public_key_hex"`
}

func runKeygen(args []string) int {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var keystorePath string
	var force bool
	fs.StringVar(&keystorePath, "keystore", "", "keystore path (default $ATTEST_KEYSTORE)")
	fs.BoolVar(&force, "force", false, "replace an existing keystore")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}
	if keystorePath == "" {
		keystorePath = cfg.KeystorePath
	}

	var kp soft.Keypair
	if force {
		if kp, err = soft.Generate(); err == nil {
			err = soft.Save(kp, keystorePath)
		}
	} else {
		kp, err = soft.Ensure(keystorePath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "keygen: %v\n", err)
		return 1
	}

	out := keygenOutput{
		Keystore:        keystorePath,
		PublicKeyBase64: base64.StdEncoding.EncodeToString(kp.Public),
		PublicKeyHex:    hex.EncodeToString(kp.Public),
	}
	if err := writeJSON("", out); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}
