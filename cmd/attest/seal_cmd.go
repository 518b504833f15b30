package main

import (
	"flag"
	"fmt"
	"os"

	"attest/internal/config"
	"attest/internal/infra/keys/soft"
	"attest/pkg/attest"
)

func runSeal(args []string) int {
	fs := flag.NewFlagSet("seal", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var inPath string
	var keystorePath string
	var outPath string
	fs.StringVar(&inPath, "in", "", "input record JSON path")
	fs.StringVar(&keystorePath, "keystore", "", "keystore path (default $ATTEST_KEYSTORE)")
	fs.StringVar(&outPath, "out", "", "output envelope path (default stdout)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if inPath == "" {
		fmt.Fprintln(os.Stderr, "seal requires --in")
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

	record, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read record: %v\n", err)
		return 1
	}

	kp, err := soft.Ensure(keystorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load keystore: %v\n", err)
		return 1
	}

	env, err := attest.Seal(record, kp.Private)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seal record: %v\n", err)
		return 1
	}

	if outPath == "" {
		if err := writeJSON("", env); err != nil {
			fmt.Fprintf(os.Stderr, "write output: %v\n", err)
			return 1
		}
		return 0
	}
	if err := attest.SaveEnvelope(env, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "save envelope: %v\n", err)
		return 1
	}
	return 0
}
