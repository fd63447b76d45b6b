// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads the Unitools settings from defaults, the
// unitools.yaml file, UNITOOLS_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Language  string         `mapstructure:"language" yaml:"language"`
	RatesFile string         `mapstructure:"rates_file" yaml:"rates_file"`
	LogFile   string         `mapstructure:"log_file" yaml:"log_file"`
	Password  PasswordConfig `mapstructure:"password" yaml:"password"`
	Random    RandomConfig   `mapstructure:"random" yaml:"random"`
}

// PasswordConfig holds the initial state of the password form.
type PasswordConfig struct {
	Length         int  `mapstructure:"length" yaml:"length"`
	Uppercase      bool `mapstructure:"uppercase" yaml:"uppercase"`
	Lowercase      bool `mapstructure:"lowercase" yaml:"lowercase"`
	Digits         bool `mapstructure:"digits" yaml:"digits"`
	Symbols        bool `mapstructure:"symbols" yaml:"symbols"`
	ExcludeSimilar bool `mapstructure:"exclude_similar" yaml:"exclude_similar"`
}

// RandomConfig holds the initial state of the random-number form.
type RandomConfig struct {
	Min    int  `mapstructure:"min" yaml:"min"`
	Max    int  `mapstructure:"max" yaml:"max"`
	Count  int  `mapstructure:"count" yaml:"count"`
	Unique bool `mapstructure:"unique" yaml:"unique"`
}

// Defaults returns the built-in values for every key.
func Defaults() map[string]any {
	return map[string]any{
		"language":                 "en",
		"rates_file":               "",
		"log_file":                 "",
		"password.length":          16,
		"password.uppercase":       true,
		"password.lowercase":       true,
		"password.digits":          true,
		"password.symbols":         false,
		"password.exclude_similar": true,
		"random.min":               1,
		"random.max":               100,
		"random.count":             5,
		"random.unique":            false,
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Unitools")
		default: // Linux, macOS, etc.
			configDir = "/etc/unitools"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "unitools")
	}

	return filepath.Join(configDir, "unitools.yaml"), nil
}

// UserConfigPath is the per-user config file location.
func UserConfigPath() (string, error) {
	return getConfigPath(false)
}

// LoadConfig builds a T from defaults, the first unitools.yaml found (or
// configFile when non-nil), the environment and cmd's flags. It also
// returns the file that was read, or "" when none was found; a missing file
// is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("unitools")
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("unitools")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("parse config: %w", err)
	}
	return c, v.ConfigFileUsed(), nil
}

// StoredConfig builds a T from defaults and the file at path, ignoring
// the environment and flags. An empty path or a missing file yields the
// defaults.
func StoredConfig[T any](defaults map[string]any, path string) (T, error) {
	var c T
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c to the user (or system) config location,
// creating the directory if needed, and returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
