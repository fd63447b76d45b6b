// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Unitools.
//
// Usage:
//
//	go run . [flags]
//	./unitools [command] [flags]
//
// Without a command Unitools launches the interactive TUI. See --help for
// the available commands.
package main

import (
	"os"

	"github.com/toeirei/unitools/internal/logging"
	"github.com/toeirei/unitools/ui/cli"
)

// main is the entrypoint for the Unitools CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
