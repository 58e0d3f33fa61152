// Package config loads and persists the CLI user settings: JLPT level
// toggles, dedup scope, annotation syntax, heading exclusion and the path
// of the custom exclusion list.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"furiganagen/kanji"
	"furiganagen/model"
)

// LevelToggles mirrors the per-level JLPT include flags. A level toggled
// off suppresses annotations for its kanji.
type LevelToggles struct {
	N5 bool `yaml:"n5"`
	N4 bool `yaml:"n4"`
	N3 bool `yaml:"n3"`
	N2 bool `yaml:"n2"`
	N1 bool `yaml:"n1"`
}

// Settings is the persisted user configuration.
type Settings struct {
	Scope           string       `yaml:"scope"`
	Syntax          string       `yaml:"syntax"`
	ExcludeHeadings bool         `yaml:"exclude_headings"`
	JlptLevels      LevelToggles `yaml:"jlpt_levels"`
	// ExclusionList is the path of a custom exclusion list file, one
	// dictionary form per line. Empty means no custom exclusions.
	ExclusionList string `yaml:"exclusion_list,omitempty"`
	// Dict names the analyzer dictionary (ipa or uni).
	Dict string `yaml:"dict"`
	// LogLevel is one of none, normal, debug.
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no configuration file exists:
// every level included, no dedup, ruby syntax, headings excluded.
func Default() Settings {
	return Settings{
		Scope:           string(model.ScopeAll),
		Syntax:          string(model.SyntaxRuby),
		ExcludeHeadings: true,
		JlptLevels:      LevelToggles{N5: true, N4: true, N3: true, N2: true, N1: true},
		Dict:            "ipa",
		LogLevel:        "normal",
	}
}

// Load reads settings from path, layering the file over defaults. An empty
// path or a missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing configuration %s: %w", path, err)
	}
	if _, err := model.ParseScope(s.Scope); err != nil {
		return s, fmt.Errorf("configuration %s: %w", path, err)
	}
	if _, err := model.ParseSyntax(s.Syntax); err != nil {
		return s, fmt.Errorf("configuration %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to path as YAML.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Options assembles engine options from the settings plus an already loaded
// custom exclusion list.
func (s Settings) Options(custom []string) model.Options {
	scope, _ := model.ParseScope(s.Scope)
	syntax, _ := model.ParseSyntax(s.Syntax)
	return model.Options{
		Levels: map[kanji.Level]bool{
			kanji.N5: s.JlptLevels.N5,
			kanji.N4: s.JlptLevels.N4,
			kanji.N3: s.JlptLevels.N3,
			kanji.N2: s.JlptLevels.N2,
			kanji.N1: s.JlptLevels.N1,
		},
		Scope:            scope,
		Syntax:           syntax,
		ExcludeHeadings:  s.ExcludeHeadings,
		CustomExclusions: custom,
	}
}

// LoadExclusionList reads a custom exclusion list file, one dictionary form
// per line. Blank lines are skipped; a missing file is an empty list.
func LoadExclusionList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading exclusion list: %w", err)
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// SaveExclusionList writes words one per line, replacing the file.
func SaveExclusionList(path string, words []string) error {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
