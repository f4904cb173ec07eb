// Package main provides the entry point for the contextrag CLI.
package main

import (
	"os"

	"github.com/context-rag/contextrag/cmd/contextrag/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
