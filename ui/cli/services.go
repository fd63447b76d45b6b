// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toeirei/unitools/internal/config"
	"github.com/toeirei/unitools/internal/core"
	"github.com/toeirei/unitools/internal/currency"
	"github.com/toeirei/unitools/internal/password"
	"github.com/toeirei/unitools/internal/tui"
)

// logFileName is used inside the user config directory when log_file is
// not configured.
const logFileName = "unitools.log"

// ratesPath returns the configured rates file or the per-user default.
func ratesPath() (string, error) {
	if appConfig.RatesFile != "" {
		return appConfig.RatesFile, nil
	}
	return currency.DefaultPath()
}

// logPath returns where the TUI writes its log.
func logPath() string {
	if appConfig.LogFile != "" {
		return appConfig.LogFile
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "unitools", logFileName)
}

func newCurrencyFlow() (*core.CurrencyFlow, string, error) {
	path, err := ratesPath()
	if err != nil {
		return nil, "", err
	}
	return core.NewCurrencyFlow(currency.NewStore(path), nil), path, nil
}

func passwordDefaults() password.Options {
	p := appConfig.Password
	return password.Options{
		Length:         p.Length,
		Uppercase:      p.Uppercase,
		Lowercase:      p.Lowercase,
		Digits:         p.Digits,
		Symbols:        p.Symbols,
		ExcludeSimilar: p.ExcludeSimilar,
	}
}

func randomDefaults() core.RandomDefaults {
	r := appConfig.Random
	return core.RandomDefaults{Min: r.Min, Max: r.Max, Count: r.Count, Unique: r.Unique}
}

// saveLanguage persists a language picked in the TUI to the user config.
// Only the stored settings are rewritten; flags and UNITOOLS_* values
// stay out of the file.
func saveLanguage(lang string) error {
	appConfig.Language = lang
	path, err := config.UserConfigPath()
	if err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	stored, err := config.StoredConfig[config.Config](config.Defaults(), path)
	if err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	stored.Language = lang
	if _, err := config.WriteConfigFile(&stored, false); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}

// tuiDeps builds every flow the TUI needs from the loaded configuration.
func tuiDeps() (tui.Deps, error) {
	cur, path, err := newCurrencyFlow()
	if err != nil {
		return tui.Deps{}, err
	}
	return tui.Deps{
		Units:        core.NewUnitConverterFlow(),
		Currency:     cur,
		Password:     core.NewPasswordFlow(passwordDefaults(), nil, nil),
		Random:       core.NewRandomFlow(randomDefaults(), nil),
		Bmi:          core.NewBmiFlow(),
		RatesPath:    path,
		LogFile:      logPath(),
		SaveLanguage: saveLanguage,
	}, nil
}
