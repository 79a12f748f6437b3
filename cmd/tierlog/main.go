// Package main provides the entry point for the tierlog CLI.
package main

import (
	"os"

	"github.com/philipp01105/tierlog/cmd/tierlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
