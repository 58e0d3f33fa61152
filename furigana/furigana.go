// Package furigana annotates Japanese text with phonetic reading guides
// over kanji runs and reverses the annotation. The morphological analyzer
// is injected as a capability; everything else is pure string transforms.
package furigana

import (
	"errors"

	"furiganagen/kanji"
	"furiganagen/model"
)

// ErrTokenizerNotReady is returned when Generate or ExtractKanji is called
// without a usable analyzer. Generate still returns the input unchanged so
// a degraded call is never destructive.
var ErrTokenizerNotReady = errors.New("morphological analyzer is not ready")

// Tokenizer is the analyzer capability the engine consumes. Any analyzer
// exposing surface form, dictionary form, reading and a known/unknown
// classification satisfies it.
type Tokenizer interface {
	Tokenize(text string) []model.LexicalToken
}

// Engine generates and removes furigana annotations. It owns no mutable
// state beyond the injected tokenizer, so one Engine may serve concurrent
// calls.
type Engine struct {
	tok Tokenizer
}

// New builds an engine around the given analyzer. A nil analyzer is
// allowed; calls then degrade per ErrTokenizerNotReady.
func New(tok Tokenizer) *Engine {
	return &Engine{tok: tok}
}

// Generate annotates every eligible kanji run in text according to opts.
// Excluded spans (existing annotations, links, code, front matter, ...)
// pass through verbatim. On an unavailable analyzer the input is returned
// unchanged together with ErrTokenizerNotReady.
func (e *Engine) Generate(text string, opts model.Options) (string, error) {
	if e.tok == nil {
		return text, ErrTokenizerNotReady
	}

	masked, placeholders := maskExclusions(text, opts.ExcludeHeadings)

	custom := make(map[string]struct{}, len(opts.CustomExclusions))
	for _, w := range opts.CustomExclusions {
		custom[w] = struct{}{}
	}
	ann := annotator{
		tok:    e.tok,
		scope:  opts.Scope,
		syntax: opts.Syntax,
		skip:   kanji.SkipSet(opts.Levels),
		custom: custom,
	}

	processed := processScoped(masked, opts.Scope, ann.annotateUnit)
	return restoreExclusions(processed, placeholders), nil
}

// ExtractKanji tokenizes text and returns the dictionary forms containing
// at least one kanji character, in token order. Duplicates are kept; the
// caller decides how to de-duplicate.
func (e *Engine) ExtractKanji(text string) ([]string, error) {
	if e.tok == nil {
		return nil, ErrTokenizerNotReady
	}
	var words []string
	for _, tk := range e.tok.Tokenize(text) {
		if kanji.ContainsKanji(tk.BaseForm) {
			words = append(words, tk.BaseForm)
		}
	}
	return words, nil
}
