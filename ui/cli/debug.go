// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/unitools/internal/config"
	"github.com/toeirei/unitools/internal/currency"
	"github.com/toeirei/unitools/internal/logging"
)

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump debug information about config, rates, env and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- UNITOOLS DEBUG ---")
			fmt.Fprintf(out, "Version: %s\n", compositeVersion())

			used := configFileUsed
			if used == "" {
				used = "(none, defaults)"
			}
			fmt.Fprintf(out, "Config file used: %s\n", used)
			if p, err := config.UserConfigPath(); err == nil {
				fmt.Fprintf(out, "User config path: %s\n", p)
			}

			path, err := ratesPath()
			if err != nil {
				return err
			}
			res := currency.NewStore(path).Load()
			fmt.Fprintf(out, "Rates file: %s\n", path)
			fmt.Fprintf(out, "Rates source: %s (%d rates)\n", res.Source, len(res.Rates))
			if res.Err != nil {
				fmt.Fprintf(out, "Rates fallback reason: %v\n", res.Err)
			}
			fmt.Fprintf(out, "Log file: %s\n", logPath())

			b, err := yaml.Marshal(&appConfig)
			if err != nil {
				logging.Errorf("could not marshal config: %v", err)
			} else {
				fmt.Fprintln(out, "-- effective config --")
				fmt.Fprint(out, string(b))
			}

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (UNITOOLS_*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "UNITOOLS_") {
					fmt.Fprintln(out, e)
				}
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
			return nil
		},
	}
}
