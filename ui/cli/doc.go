// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Unitools using Cobra.
// It loads configuration, initializes localization and provides one command
// per tool that delegates to the flows in internal/core. CLI code should
// remain thin and keep validation and formatting in the flows.
package cli
