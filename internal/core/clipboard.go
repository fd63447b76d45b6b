// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import "github.com/atotto/clipboard"

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
