// Package main provides the isocheck CLI.
//
// Usage:
//
//	isocheck [flags] <command> [args]
//
// Commands:
//
//	inspect   - enumerate isomorphisms between two graph documents
//	stats     - report search statistics for two graph documents
//	normalize - print a graph document in canonical form
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/isomorph/cmd/isocheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
