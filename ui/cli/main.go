// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the Unitools
// application using the Cobra library. It defines the root command, the
// persistent flags and the main entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"slices"

	"github.com/spf13/cobra"
	"github.com/toeirei/unitools/buildvars"
	"github.com/toeirei/unitools/internal/config"
	"github.com/toeirei/unitools/internal/i18n"
	"github.com/toeirei/unitools/internal/logging"
	"github.com/toeirei/unitools/internal/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var ratesFile string
var verbose bool
var showVersionFlag bool

// appConfig is the configuration loaded by setupDefaultServices.
var appConfig config.Config

// configFileUsed is the config file that was read, if any.
var configFileUsed string

// errVersionPrinted stops command execution after --version was handled.
var errVersionPrinted = errors.New("version printed")

// isTerminal decides whether the bare root command starts the TUI.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI is swapped out in tests.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	if verbose {
		logging.SetDebug(true)
	}

	appConfig, configFileUsed, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" || !slices.Contains(i18n.LocaleCodes(), appConfig.Language) {
		if appConfig.Language != "" {
			logging.Warnf("unsupported language %q, using English", appConfig.Language)
		}
		appConfig.Language = "en"
	}

	// First run: persist the defaults so users have a file to edit. Flags
	// and UNITOOLS_* values apply to this run only.
	if configFileUsed == "" {
		writeDefaultConfig()
	}

	if cmd.Flags().Changed("rates-file") {
		appConfig.RatesFile = ratesFile
	}

	i18n.Init(appConfig.Language)
	return nil
}

func writeDefaultConfig() {
	defaults, err := config.StoredConfig[config.Config](config.Defaults(), "")
	if err != nil {
		logging.Warnf("could not build default config: %v", err)
		return
	}
	if path, err := config.WriteConfigFile(&defaults, false); err != nil {
		logging.Warnf("could not write default config file: %v", err)
	} else {
		logging.Debugf("wrote default config to %s", path)
	}
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	defer func() { _ = logging.Close() }()

	err := NewRootCmd().Execute()
	if errors.Is(err, errVersionPrinted) {
		return nil
	}
	return err
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// compositeVersion renders version, commit and build date on one line.
func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unitools",
		Short: "Unitools bundles everyday calculators and generators.",
		Long: `Unitools converts units and currencies, generates passwords and
random numbers and calculates the body mass index.

Running without a subcommand in a terminal launches the interactive TUI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				return errVersionPrinted
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return cmd.Help()
			}
			deps, err := tuiDeps()
			if err != nil {
				return err
			}
			return runTUI(deps)
		},
	}

	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "", `Interface language ("en", "de")`)
	cmd.PersistentFlags().StringVar(&ratesFile, "rates-file", "", "Exchange rate file (default: user config dir)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newConvertCmd(),
		newCurrencyCmd(),
		newPasswordCmd(),
		newRandomCmd(),
		newBmiCmd(),
		newDebugCmd(),
		versionCmd,
	)

	return cmd
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/unitools" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
