package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func run(args []string) int {
	if len(args) < 2 {
		usage(args)
		return 1
	}

	switch args[1] {
	case "keygen":
		return runKeygen(args[2:])
	case "seal":
		return runSeal(args[2:])
	case "verify":
		return runVerify(args[2:])
	case "compare":
		return runCompare(args[2:])
	}

	usage(args)
	return 1
}

func usage(args []string) {
	name := "attest"
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  %s keygen [--keystore <file>] [--force]\n", name)
	fmt.Fprintf(os.Stderr, "  %s seal --in <record.json> [--keystore <file>] [--out <file>]\n", name)
	fmt.Fprintf(os.Stderr, "  %s verify --in <envelope.json> [--against <record.json>]\n", name)
	fmt.Fprintf(os.Stderr, "  %s compare --a <record.json> --b <record.json>\n", name)
}
