package tokenize

import (
	"strings"
	"testing"

	"furiganagen/model"
)

func newIPA(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(DictIPA)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestTokenizeSurfacesConcatenate(t *testing.T) {
	a := newIPA(t)
	for _, text := range []string{
		"食べた",
		"今日は学校へ行きます。",
		"漢字とひらがなとカタカナ",
	} {
		var b strings.Builder
		for _, tk := range a.Tokenize(text) {
			b.WriteString(tk.Surface)
		}
		if b.String() != text {
			t.Errorf("surfaces of %q concatenate to %q", text, b.String())
		}
	}
}

func TestTokenizeBaseFormAndReading(t *testing.T) {
	a := newIPA(t)
	toks := a.Tokenize("食べた")
	if len(toks) == 0 {
		t.Fatal("no tokens")
	}
	first := toks[0]
	if first.BaseForm != "食べる" {
		t.Errorf("base form = %q, want 食べる", first.BaseForm)
	}
	if first.Reading == "" {
		t.Error("reading must be present for a dictionary word")
	}
	if first.WordType != model.WordKnown {
		t.Errorf("word type = %q, want KNOWN", first.WordType)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if toks := newIPA(t).Tokenize(""); len(toks) != 0 {
		t.Errorf("empty input produced %d tokens", len(toks))
	}
}

func TestNewRejectsUnknownDict(t *testing.T) {
	if _, err := New("edict"); err == nil {
		t.Error("unknown dictionary must be rejected")
	}
}
