// Package main provides the CLI entrypoint for fieldmap.
//
// fieldmap loads declarative field-mapping documents and renders
// fixed-width extract records from them:
//   - check: load and validate a mapping source, print diagnostics
//   - list: list the transaction types a mapping source defines
//   - render: evaluate one row against a transaction type's mapping
package main

import (
	"fmt"
	"os"

	"fieldmap/cmd/fieldmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
