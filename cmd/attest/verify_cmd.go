package main

import (
	"flag"
	"fmt"
	"os"

	"attest/internal/domain"
	"attest/pkg/attest"
)

type verifyOutput struct {
	Valid  bool                     `json:"valid"`
	Reason string                   `json:"reason,omitempty"`
	Digest string                   `json:"digest"`
	Diff   *domain.ComparisonReport `json:"diff,omitempty"`
}

func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var inPath string
	var againstPath string
	fs.StringVar(&inPath, "in", "", "envelope JSON path")
	fs.StringVar(&againstPath, "against", "", "trusted record JSON to diff against on failure")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if inPath == "" {
		fmt.Fprintln(os.Stderr, "verify requires --in")
		return 1
	}

	record, result, err := attest.OpenAndVerify(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verify envelope: %v\n", err)
		return 1
	}

	output := verifyOutput{
		Valid:  result.Valid,
		Reason: result.Reason,
		Digest: result.Digest,
	}

	// A failed verdict is asserted and, when a trusted copy is available,
	// explained: the diff shows which fields changed.
	if !result.Valid && againstPath != "" {
		trusted, err := attest.LoadRecord(againstPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load trusted record: %v\n", err)
			return 1
		}
		report, err := attest.Compare(trusted, record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "compare records: %v\n", err)
			return 1
		}
		output.Diff = &report
	}

	if err := writeJSON("", output); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return 1
	}
	if !result.Valid {
		return 2
	}
	return 0
}
