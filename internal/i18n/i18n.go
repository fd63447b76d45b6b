// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for Unitools.
// It uses the go-i18n library to load the embedded translation files and
// golang.org/x/text to render numbers the way the active language expects.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	printer   *message.Printer
	lang      = "en"
)

// displayNames maps locale codes to the name shown in the language picker.
var displayNames = map[string]string{
	"en": "English",
	"de": "Deutsch",
}

// Init loads every embedded locale and activates lang. Unknown languages
// fall back to English for missing messages.
func Init(l string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	if l == "" {
		l = "en"
	}
	lang = l
	localizer = i18n.NewLocalizer(bundle, l)

	tag, err := language.Parse(l)
	if err != nil {
		tag = language.English
	}
	printer = message.NewPrinter(tag)
}

// SetLang changes the active language.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the active language code.
func GetLang() string {
	return lang
}

// GetAvailableLocales returns the embedded locales keyed by code with their
// display names.
func GetAvailableLocales() map[string]string {
	out := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := strings.TrimSuffix(f.Name(), ".yaml")
		// "active.en.yaml" style names carry the code after the first dot.
		if i := strings.LastIndex(code, "."); i >= 0 {
			code = code[i+1:]
		}
		name, ok := displayNames[code]
		if !ok {
			name = code
		}
		out[code] = name
	}
	return out
}

// LocaleCodes returns the available locale codes in a stable order.
func LocaleCodes() []string {
	av := GetAvailableLocales()
	codes := make([]string, 0, len(av))
	for c := range av {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// T translates messageID. A single map argument is passed as template data;
// any other arguments are applied fmt-style to the translated text. A
// missing message yields the id itself.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Translator is T bound to a value, for packages that take an interface.
type Translator struct{}

// T implements label lookup via the package-level T.
func (Translator) T(messageID string) string { return T(messageID) }

// FormatNumber renders v with at most maxDecimals fraction digits, dropping
// trailing zeros, using the active language's separators.
func FormatNumber(v float64, maxDecimals int) string {
	if printer == nil {
		Init(lang)
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxDecimals)))
}

// FormatFixed renders v with exactly decimals fraction digits.
func FormatFixed(v float64, decimals int) string {
	if printer == nil {
		Init(lang)
	}
	return printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// DecimalSeparator returns the decimal mark of the active language.
func DecimalSeparator() string {
	if printer == nil {
		Init(lang)
	}
	s := printer.Sprint(number.Decimal(1.5, number.MinFractionDigits(1)))
	return strings.Trim(s, "15")
}
