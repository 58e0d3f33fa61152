package model

import (
	"fmt"

	"furiganagen/kanji"
)

// Scope is the unit of text over which first-occurrence deduplication of
// annotations is tracked.
type Scope string

const (
	// ScopeAll annotates every eligible occurrence, no dedup.
	ScopeAll Scope = "ALL"
	// ScopeEntireText tracks first occurrences across the whole text.
	ScopeEntireText Scope = "ENTIRE_TEXT"
	// ScopeParagraph tracks first occurrences per line.
	ScopeParagraph Scope = "PARAGRAPH"
	// ScopeSentence tracks first occurrences per sentence.
	ScopeSentence Scope = "SENTENCE"
)

// ScopeNames lists valid scope values in CLI/config order.
func ScopeNames() []string {
	return []string{string(ScopeAll), string(ScopeEntireText), string(ScopeParagraph), string(ScopeSentence)}
}

// ParseScope validates a scope string from config or command line.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeAll, ScopeEntireText, ScopeParagraph, ScopeSentence:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown scope %q", s)
}

// Syntax selects one of the three textual annotation encodings.
type Syntax string

const (
	// SyntaxRuby emits <ruby>K<rt>R</rt></ruby>.
	SyntaxRuby Syntax = "RUBY"
	// SyntaxMarkdown emits {K|R}.
	SyntaxMarkdown Syntax = "MARKDOWN"
	// SyntaxNovel emits K《R》.
	SyntaxNovel Syntax = "JAPANESE_NOVEL"
)

// SyntaxNames lists valid syntax values in CLI/config order.
func SyntaxNames() []string {
	return []string{string(SyntaxRuby), string(SyntaxMarkdown), string(SyntaxNovel)}
}

// ParseSyntax validates a syntax string from config or command line.
func ParseSyntax(s string) (Syntax, error) {
	switch Syntax(s) {
	case SyntaxRuby, SyntaxMarkdown, SyntaxNovel:
		return Syntax(s), nil
	}
	return "", fmt.Errorf("unknown annotation syntax %q", s)
}

// Options carries the caller-owned settings for one Generate call.
type Options struct {
	// Levels maps each JLPT level to whether its kanji should be annotated.
	// Kanji of levels toggled off are suppressed. A nil map includes all levels.
	Levels map[kanji.Level]bool
	// Scope selects the dedup unit.
	Scope Scope
	// Syntax selects the output encoding.
	Syntax Syntax
	// ExcludeHeadings masks markdown heading lines whole.
	ExcludeHeadings bool
	// CustomExclusions lists dictionary forms that are never annotated.
	CustomExclusions []string
}

// DefaultOptions mirrors the default user settings: all levels included,
// no dedup, ruby output, headings excluded.
func DefaultOptions() Options {
	levels := make(map[kanji.Level]bool, len(kanji.Levels()))
	for _, l := range kanji.Levels() {
		levels[l] = true
	}
	return Options{
		Levels:          levels,
		Scope:           ScopeAll,
		Syntax:          SyntaxRuby,
		ExcludeHeadings: true,
	}
}
