// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package currency

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/toeirei/unitools/internal/logging"
)

// RatesFileName is the file name used inside the per-user config directory.
const RatesFileName = "currency_rates.json"

// Why a load fell back to the built-in table.
var (
	ErrNoRatesFile = errors.New("rates file does not exist")
	ErrEmptyRates  = errors.New("rates file holds no rates")
)

// Source tells where loaded rates came from.
type Source int

const (
	SourceFile Source = iota
	SourceDefaults
)

func (s Source) String() string {
	if s == SourceFile {
		return "file"
	}
	return "defaults"
}

// LoadResult is what Store.Load hands back. Rates is always usable. When
// Source is SourceDefaults, Err explains why the file was not used; it is
// informational and never needs to be handled.
type LoadResult struct {
	Rates  []Rate
	Source Source
	Err    error
}

// Store persists the rate table as an indented JSON list at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user location of the rates file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "unitools", RatesFileName), nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the persisted table. Any failure (missing file, unreadable or
// malformed content, empty list) yields the default table.
func (s *Store) Load() LoadResult {
	rates, err := s.read()
	if err != nil {
		logging.Debugf("using default currency rates: %v", err)
		return LoadResult{Rates: DefaultRates(), Source: SourceDefaults, Err: err}
	}
	return LoadResult{Rates: rates, Source: SourceFile}
}

func (s *Store) read() ([]Rate, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoRatesFile
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var rates []Rate
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if len(rates) == 0 {
		return nil, ErrEmptyRates
	}
	return rates, nil
}

// Save writes rates, creating the parent directory when needed. An existing
// file is overwritten.
func (s *Store) Save(rates []Rate) error {
	if rates == nil {
		rates = []Rate{}
	}
	data, err := json.MarshalIndent(rates, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create rates directory %s: %w", dir, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	logging.Debugf("saved %d currency rates to %s", len(rates), s.path)
	return nil
}
