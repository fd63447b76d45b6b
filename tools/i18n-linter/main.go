// Copyright (c) 2026 Keymaster Team
// Unitools - everyday calculators and generators
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter is a tool to check for missing or orphaned translation keys.
// It scans the Go source code for message ids and compares them against
// the YAML locale files to ensure consistency.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key") or a bare literal shaped like a message id.
	keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"\s*[,)]|"([a-z]+\.[a-z_]+(?:\.[a-z_]+)*)"`)
	// "some.prefix." + x builds ids at runtime; every key below the prefix
	// counts as used.
	prefixRe = regexp.MustCompile(`"([a-z_]+(?:\.[a-z_]+)*\.)"\s*\+`)
)

// usage is what the source scan found. Bare literals only count as ids
// once their first segment matches a namespace of the primary locale.
type usage struct {
	keys     map[string]struct{}
	literals map[string]struct{}
	prefixes []string
}

func namespace(key string) string {
	ns, _, _ := strings.Cut(key, ".")
	return ns
}

func (u usage) covers(key string) bool {
	if _, ok := u.keys[key]; ok {
		return true
	}
	for _, p := range u.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// report lists every inconsistency between the code and the locales.
type report struct {
	// undefined ids are used in code but absent from the primary locale.
	undefined []string
	// orphaned ids are defined in the primary locale but never used.
	orphaned []string
	// missing maps a secondary locale file to the ids it lacks.
	missing map[string][]string
}

func (r report) failed() bool {
	if len(r.undefined) > 0 {
		return true
	}
	for _, keys := range r.missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	printSection("Keys used in code but not defined in "+primaryLocale, r.undefined)
	printSection("Orphaned keys (defined but not used)", r.orphaned)

	files := make([]string, 0, len(r.missing))
	for f := range r.missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		printSection("Missing keys in "+f, r.missing[f])
	}

	fmt.Println("--- Linter Finished ---")
	switch {
	case r.failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(r.orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func printSection(title string, keys []string) {
	fmt.Printf("--- %s ---\n", title)
	if len(keys) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, k := range keys {
		fmt.Printf("  - %s\n", k)
	}
	fmt.Println()
}

// lint compares the ids used below root with the locale files in dir.
func lint(root, dir string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("error finding used keys: %w", err)
	}

	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("error loading primary locale '%s': %w", primaryLocale, err)
	}

	namespaces := map[string]struct{}{}
	for k := range primary {
		namespaces[namespace(k)] = struct{}{}
	}
	for k := range used.literals {
		if _, ok := namespaces[namespace(k)]; ok {
			used.keys[k] = struct{}{}
		}
	}

	r := report{missing: map[string][]string{}}
	for k := range used.keys {
		if _, ok := primary[k]; !ok {
			r.undefined = append(r.undefined, k)
		}
	}
	for k := range primary {
		if !used.covers(k) {
			r.orphaned = append(r.orphaned, k)
		}
	}
	sort.Strings(r.undefined)
	sort.Strings(r.orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, f := range files {
		if filepath.Base(f) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(f)
		if err != nil {
			return report{}, fmt.Errorf("error loading %s: %w", f, err)
		}
		var lacking []string
		for k := range primary {
			if _, ok := keys[k]; !ok {
				lacking = append(lacking, k)
			}
		}
		sort.Strings(lacking)
		r.missing[filepath.Base(f)] = lacking
	}
	return r, nil
}

// findUsedKeys scans all non-test .go files below root.
func findUsedKeys(root string) (usage, error) {
	u := usage{keys: map[string]struct{}{}, literals: map[string]struct{}{}}
	seen := map[string]struct{}{}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "tools", "_examples", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyRe.FindAllStringSubmatch(string(content), -1) {
			switch {
			case m[1] != "":
				u.keys[m[1]] = struct{}{}
			case m[2] != "":
				u.literals[m[2]] = struct{}{}
			}
		}
		for _, m := range prefixRe.FindAllStringSubmatch(string(content), -1) {
			if _, dup := seen[m[1]]; !dup {
				seen[m[1]] = struct{}{}
				u.prefixes = append(u.prefixes, m[1])
			}
		}
		return nil
	})
	sort.Strings(u.prefixes)
	return u, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
// Nested maps are flattened with dots, so both flat and nested layouts work.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range m {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flattenYAML(next, val, keys)
	}
}
