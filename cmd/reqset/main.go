// Package main provides the reqset binary entry point.
package main

import (
	"os"

	"github.com/c360studio/reqset/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
