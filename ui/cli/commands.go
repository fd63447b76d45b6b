// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/unitools/internal/core"
	"github.com/toeirei/unitools/internal/currency"
	"github.com/toeirei/unitools/internal/i18n"
	"github.com/toeirei/unitools/internal/units"
)

// flowError turns a failed flow call into the localized message the flow
// recorded, keeping the sentinel for errors.Is.
func flowError(message string, err error) error {
	if message == "" || message == err.Error() {
		return err
	}
	return fmt.Errorf("%s: %w", message, err)
}

// resolveUnits finds the category holding both unit names. An explicit
// category restricts the search.
func resolveUnits(category, from, to string) (units.Category, units.Unit, units.Unit, error) {
	cats := units.Categories()
	if category != "" {
		c, err := units.ParseCategory(category)
		if err != nil {
			return 0, nil, nil, err
		}
		cats = []units.Category{c}
	}
	for _, c := range cats {
		f, errF := units.ParseUnit(c, from)
		t, errT := units.ParseUnit(c, to)
		if errF == nil && errT == nil {
			return c, f, t, nil
		}
	}
	return 0, nil, nil, flowError(i18n.T("error.unknown_units", from, to), core.ErrSelectUnits)
}

func newConvertCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a temperature, length or mass",
		Long: `Converts VALUE from one unit to another. Units may be given by name or
symbol (c, f, k, m, km, cm, mm, g, kg, lb). The category is detected from
the units unless --category is set. Use "--" before negative values.`,
		Example: "  unitools convert 100 c f\n  unitools convert -- -40 celsius fahrenheit",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, from, to, err := resolveUnits(category, args[1], args[2])
			if err != nil {
				return err
			}
			flow := core.NewUnitConverterFlow()
			flow.SelectCategory(c)
			flow.From, flow.To = from, to
			flow.Input = args[0]
			if _, err := flow.Convert(); err != nil {
				return flowError(flow.ErrorMessage, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), flow.ResultText)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Unit category (temperature, length, mass)")
	return cmd
}

func newCurrencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Convert currencies and manage exchange rates",
		Long: `Rates are relative to a common base (EUR = 1). They are read from the
rates file and fall back to a built-in table when the file is missing.`,
	}

	convertCmd := &cobra.Command{
		Use:   "convert AMOUNT FROM TO",
		Short: "Convert an amount between two currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, _, err := newCurrencyFlow()
			if err != nil {
				return err
			}
			flow.Amount, flow.From, flow.To = args[0], args[1], args[2]
			if _, err := flow.Convert(); err != nil {
				return flowError(flow.ErrorMessage, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), flow.ResultText)
			return nil
		},
	}

	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "List the exchange rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, path, err := newCurrencyFlow()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range flow.Table().Rates() {
				fmt.Fprintf(out, "%-6s %s\n", r.Code, i18n.FormatNumber(r.Rate, 4))
			}
			if flow.LoadSource == currency.SourceFile {
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("label.rates_source_file", path))
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("label.rates_source_defaults"))
			}
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set CODE RATE",
		Short: "Add or update a rate and save the table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, _, err := newCurrencyFlow()
			if err != nil {
				return err
			}
			if err := flow.SetRate(args[0], args[1]); err != nil {
				return flowError(flow.ErrorMessage, err)
			}
			if err := flow.SaveRates(); err != nil {
				return flowError(flow.ErrorMessage, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), flow.StatusMessage)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove CODE",
		Short: "Remove a currency and save the table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, _, err := newCurrencyFlow()
			if err != nil {
				return err
			}
			if !flow.RemoveRate(args[0]) {
				return errors.New(i18n.T("error.unknown_currency", strings.ToUpper(args[0])))
			}
			if err := flow.SaveRates(); err != nil {
				return flowError(flow.ErrorMessage, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), flow.StatusMessage)
			return nil
		},
	}

	cmd.AddCommand(convertCmd, ratesCmd, setCmd, removeCmd)
	return cmd
}

func newPasswordCmd() *cobra.Command {
	var (
		length, count                 int
		upper, lower, digits, symbols bool
		excludeSimilar, copyLast      bool
	)
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate random passwords",
		Long: `Generates passwords from crypto/rand. Every selected character class is
guaranteed to appear at least once. Defaults come from the password
section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := passwordDefaults()
			f := cmd.Flags()
			if f.Changed("length") {
				opts.Length = length
			}
			if f.Changed("upper") {
				opts.Uppercase = upper
			}
			if f.Changed("lower") {
				opts.Lowercase = lower
			}
			if f.Changed("digits") {
				opts.Digits = digits
			}
			if f.Changed("symbols") {
				opts.Symbols = symbols
			}
			if f.Changed("exclude-similar") {
				opts.ExcludeSimilar = excludeSimilar
			}

			flow := core.NewPasswordFlow(opts, nil, nil)
			for i := 0; i < max(count, 1); i++ {
				pw, err := flow.Generate()
				if err != nil {
					return flowError(flow.ErrorMessage, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), pw)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", i18n.T("label.strength"), flow.StrengthLabel())

			if copyLast {
				if err := flow.Copy(); err != nil {
					return flowError(flow.ErrorMessage, err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), flow.StatusMessage)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 16, "Password length")
	cmd.Flags().BoolVar(&upper, "upper", true, "Include uppercase letters")
	cmd.Flags().BoolVar(&lower, "lower", true, "Include lowercase letters")
	cmd.Flags().BoolVar(&digits, "digits", true, "Include digits")
	cmd.Flags().BoolVar(&symbols, "symbols", false, "Include symbols")
	cmd.Flags().BoolVar(&excludeSimilar, "exclude-similar", true, "Leave out look-alike characters (O0oIl1)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords")
	cmd.Flags().BoolVar(&copyLast, "copy", false, "Copy the last password to the clipboard")
	return cmd
}

func newRandomCmd() *cobra.Command {
	var (
		minV, maxV, count int
		unique            bool
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Draw random integers",
		Long: `Draws COUNT integers between MIN and MAX inclusive and prints them sorted.
With --unique no number repeats. Defaults come from the random section of
the config file.`,
		Example: "  unitools random --min 1 --max 49 --count 6 --unique",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := core.NewRandomFlow(randomDefaults(), nil)
			f := cmd.Flags()
			if f.Changed("min") {
				flow.Min = strconv.Itoa(minV)
			}
			if f.Changed("max") {
				flow.Max = strconv.Itoa(maxV)
			}
			if f.Changed("count") {
				flow.Count = strconv.Itoa(count)
			}
			if f.Changed("unique") {
				flow.Unique = unique
			}
			if _, err := flow.Generate(); err != nil {
				return flowError(flow.ErrorMessage, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), flow.Output)
			return nil
		},
	}
	cmd.Flags().IntVar(&minV, "min", 1, "Lower bound (inclusive)")
	cmd.Flags().IntVar(&maxV, "max", 100, "Upper bound (inclusive)")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "How many numbers to draw")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Draw without repetition")
	return cmd
}

func newBmiCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "bmi WEIGHT_KG HEIGHT_CM",
		Short:   "Calculate the body mass index",
		Example: "  unitools bmi 70 175",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := core.NewBmiFlow()
			flow.WeightKg, flow.HeightCm = args[0], args[1]
			if _, err := flow.Calculate(); err != nil {
				return flowError(flow.ErrorMessage, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), flow.ResultText)
			return nil
		},
	}
}
