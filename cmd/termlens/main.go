// Package main provides the entry point for the termlens CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/termlens/cmd/termlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
