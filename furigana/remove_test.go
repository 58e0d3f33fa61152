package furigana

import (
	"testing"

	"furiganagen/model"
)

func TestRemoveSyntaxEquivalence(t *testing.T) {
	eng := New(nil)
	cases := []string{
		"{日本|にほん}",
		"<ruby>日本<rt>にほん</rt></ruby>",
		"日本《にほん》",
	}
	for _, in := range cases {
		if got := eng.Remove(in); got != "日本" {
			t.Errorf("Remove(%q) = %q, want 日本", in, got)
		}
	}
}

func TestRemoveMixedSyntaxes(t *testing.T) {
	eng := New(nil)
	// The novel branch's lazy prefix cannot cross a newline, so annotations
	// in other syntaxes on earlier lines strip independently.
	in := "<ruby>食<rt>た</rt></ruby>べて{学校|がっこう}へ。\n漢字《かんじ》を書く。"
	want := "食べて学校へ。\n漢字を書く。"
	if got := eng.Remove(in); got != want {
		t.Errorf("Remove = %q, want %q", got, want)
	}
}

func TestRemoveLeavesPlainTextUntouched(t *testing.T) {
	eng := New(nil)
	for _, in := range []string{"", "注釈なしの文。", "abc {notruby} [link](x)"} {
		if got := eng.Remove(in); got != in {
			t.Errorf("Remove(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestGenerateRemoveRoundTrip(t *testing.T) {
	eng := testEngine()
	texts := []string{
		"今日は日本へ行く。",
		"食べる。食べた。",
		"入り口は大人気。",
	}
	for _, text := range texts {
		annotated, err := eng.Generate(text, allOpts(model.SyntaxRuby))
		if err != nil {
			t.Fatalf("Generate(%q): %v", text, err)
		}
		if got := eng.Remove(annotated); got != text {
			t.Errorf("Remove(Generate(%q)) = %q via %q", text, got, annotated)
		}
	}
}
