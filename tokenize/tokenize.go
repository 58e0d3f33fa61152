// Package tokenize adapts the kagome morphological analyzer to the token
// shape the furigana engine consumes.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"furiganagen/model"
)

// Dict selects which kagome dictionary backs the analyzer.
type Dict string

const (
	DictIPA Dict = "ipa"
	DictUni Dict = "uni"
)

// DictNames lists the supported dictionary names.
func DictNames() []string {
	return []string{string(DictIPA), string(DictUni)}
}

// Analyzer wraps a kagome tokenizer behind the engine's capability
// interface. The dictionary is loaded once in New; Tokenize is synchronous
// and safe for concurrent use.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// New builds an analyzer over the named dictionary.
func New(d Dict) (*Analyzer, error) {
	var sysDict *dict.Dict
	switch d {
	case DictIPA, "":
		sysDict = ipa.Dict()
	case DictUni:
		sysDict = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown dictionary %q", d)
	}
	t, err := tokenizer.New(sysDict, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("loading %s dictionary: %w", d, err)
	}
	return &Analyzer{t: t}, nil
}

// Tokenize segments text into lexical tokens. Token surfaces concatenate
// back to the input exactly; annotation depends on that.
func (a *Analyzer) Tokenize(text string) []model.LexicalToken {
	if text == "" {
		return nil
	}
	ktoks := a.t.Tokenize(text)
	out := make([]model.LexicalToken, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		base, ok := kt.BaseForm()
		if !ok || base == "" || base == "*" {
			base = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		out = append(out, model.LexicalToken{
			Surface:  kt.Surface,
			BaseForm: base,
			Reading:  reading,
			POS:      strings.Join(kt.POS(), ","),
			Start:    kt.Start,
			End:      kt.End,
			WordType: wordType(kt.Class),
		})
	}
	return out
}

func wordType(c tokenizer.TokenClass) model.WordType {
	switch c {
	case tokenizer.UNKNOWN:
		return model.WordUnknown
	case tokenizer.USER:
		return model.WordUser
	default:
		return model.WordKnown
	}
}
