package main

import (
	"flag"
	"fmt"
	"os"

	"attest/pkg/attest"
)

func runCompare(args []string) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var aPath string
	var bPath string
	fs.StringVar(&aPath, "a", "", "first record JSON path")
	fs.StringVar(&bPath, "b", "", "second record JSON path")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if aPath == "" || bPath == "" {
		fmt.Fprintln(os.Stderr, "compare requires --a and --b")
		return 1
	}

	recA, err := attest.LoadRecord(aPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load first record: %v\n", err)
		return 1
	}
	recB, err := attest.LoadRecord(bPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load second record: %v\n", err)
		return 1
	}

	report, err := attest.Compare(recA, recB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compare records: %v\n", err)
		return 1
	}
	if err := writeJSON("", report); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return 1
	}
	if !report.Equal {
		return 2
	}
	return 0
}
