package furigana

import (
	"testing"

	"furiganagen/kanji"
	"furiganagen/model"
)

// fakeEntry is one vocabulary item for the fake analyzer.
type fakeEntry struct {
	base    string
	reading string
}

// fakeTokenizer segments text by greedy longest match over a fixed
// vocabulary; anything not in the vocabulary becomes per-rune tokens
// without reading. Surfaces always concatenate back to the input.
type fakeTokenizer struct {
	vocab map[string]fakeEntry
}

func (f *fakeTokenizer) Tokenize(text string) []model.LexicalToken {
	var out []model.LexicalToken
	runes := []rune(text)
	for i := 0; i < len(runes); {
		matched := false
		max := len(runes) - i
		if max > 8 {
			max = 8
		}
		for l := max; l > 0; l-- {
			w := string(runes[i : i+l])
			e, ok := f.vocab[w]
			if !ok {
				continue
			}
			out = append(out, model.LexicalToken{
				Surface:  w,
				BaseForm: e.base,
				Reading:  e.reading,
				WordType: model.WordKnown,
			})
			i += l
			matched = true
			break
		}
		if !matched {
			out = append(out, model.LexicalToken{
				Surface:  string(runes[i]),
				BaseForm: string(runes[i]),
				WordType: model.WordUnknown,
			})
			i++
		}
	}
	return out
}

func testVocab() map[string]fakeEntry {
	return map[string]fakeEntry{
		"食べる": {base: "食べる", reading: "タベル"},
		"食べた": {base: "食べる", reading: "タベタ"},
		"大人気": {base: "大人気", reading: "ダイニンキ"},
		"学校":  {base: "学校", reading: "ガッコウ"},
		"政治":  {base: "政治", reading: "セイジ"},
		"日本":  {base: "日本", reading: "ニホン"},
		"入り口": {base: "入り口", reading: "イリグチ"},
		"行く":  {base: "行く", reading: "イク"},
		"今日":  {base: "今日", reading: "キョウ"},
		"は":   {base: "は", reading: "ハ"},
		"へ":   {base: "へ", reading: "ヘ"},
		"。":   {base: "。", reading: "。"},
		"みかん": {base: "みかん", reading: "ミカン"},
	}
}

func testEngine() *Engine {
	return New(&fakeTokenizer{vocab: testVocab()})
}

func allOpts(syntax model.Syntax) model.Options {
	o := model.DefaultOptions()
	o.Syntax = syntax
	return o
}

func TestGenerateAlignsOkurigana(t *testing.T) {
	got, err := testEngine().Generate("食べる", allOpts(model.SyntaxRuby))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := "<ruby>食<rt>た</rt></ruby>べる"
	if got != want {
		t.Errorf("Generate(食べる) = %q, want %q", got, want)
	}
}

func TestGenerateSingleKanjiRun(t *testing.T) {
	got, err := testEngine().Generate("大人気", allOpts(model.SyntaxRuby))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := "<ruby>大人気<rt>だいにんき</rt></ruby>"
	if got != want {
		t.Errorf("Generate(大人気) = %q, want %q", got, want)
	}
}

func TestGenerateMultipleKanjiRuns(t *testing.T) {
	got, err := testEngine().Generate("入り口", allOpts(model.SyntaxRuby))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := "<ruby>入<rt>い</rt></ruby>り<ruby>口<rt>ぐち</rt></ruby>"
	if got != want {
		t.Errorf("Generate(入り口) = %q, want %q", got, want)
	}
}

func TestGenerateSyntaxes(t *testing.T) {
	cases := []struct {
		syntax model.Syntax
		want   string
	}{
		{model.SyntaxRuby, "<ruby>日本<rt>にほん</rt></ruby>"},
		{model.SyntaxMarkdown, "{日本|にほん}"},
		{model.SyntaxNovel, "日本《にほん》"},
	}
	for _, c := range cases {
		got, err := testEngine().Generate("日本", allOpts(c.syntax))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if got != c.want {
			t.Errorf("syntax %s: got %q, want %q", c.syntax, got, c.want)
		}
	}
}

func TestGenerateJlptSuppression(t *testing.T) {
	opts := allOpts(model.SyntaxRuby)
	opts.Levels[kanji.N5] = false

	// 学 and 校 are both N5: the whole word is suppressed.
	got, err := testEngine().Generate("学校", opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "学校" {
		t.Errorf("Generate(学校) with N5 off = %q, want unchanged", got)
	}

	// 政 and 治 are not N5: still annotated.
	got, err = testEngine().Generate("政治", opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := "<ruby>政治<rt>せいじ</rt></ruby>"; got != want {
		t.Errorf("Generate(政治) with N5 off = %q, want %q", got, want)
	}
}

func TestGenerateCustomExclusionMatchesDictionaryForm(t *testing.T) {
	opts := allOpts(model.SyntaxRuby)
	opts.CustomExclusions = []string{"食べる"}

	// 食べた inflects 食べる; exclusion matches the dictionary form.
	got, err := testEngine().Generate("食べた", opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "食べた" {
		t.Errorf("Generate(食べた) with 食べる excluded = %q, want unchanged", got)
	}
}

func TestGenerateSkipsKanaAndUnknown(t *testing.T) {
	eng := testEngine()
	for _, in := range []string{"みかん", "カラオケ", "abc 123"} {
		got, err := eng.Generate(in, allOpts(model.SyntaxRuby))
		if err != nil {
			t.Fatalf("Generate(%q): %v", in, err)
		}
		if got != in {
			t.Errorf("Generate(%q) = %q, want unchanged", in, got)
		}
	}
	// Kanji outside the vocabulary comes back as UNKNOWN without reading.
	got, err := eng.Generate("鰻", allOpts(model.SyntaxRuby))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "鰻" {
		t.Errorf("Generate(鰻) = %q, want unchanged", got)
	}
}

func TestGenerateWithoutTokenizer(t *testing.T) {
	eng := New(nil)
	in := "食べる"
	got, err := eng.Generate(in, allOpts(model.SyntaxRuby))
	if err != ErrTokenizerNotReady {
		t.Fatalf("err = %v, want ErrTokenizerNotReady", err)
	}
	if got != in {
		t.Errorf("degraded Generate must return the input unchanged, got %q", got)
	}
}

func TestAlignReadingLookupFallback(t *testing.T) {
	// The character after the run does not occur in the reading: the run
	// consumes the remainder and the trailing character is copied as is.
	got := alignReading("光年x", "こうねん", model.SyntaxRuby)
	want := "<ruby>光年<rt>こうねん</rt></ruby>x"
	if got != want {
		t.Errorf("alignReading = %q, want %q", got, want)
	}
}

func TestAlignReadingIdenticalRunNotAnnotated(t *testing.T) {
	// Degenerate reading containing the run itself: the slice equals the
	// run, so no annotation is emitted.
	got := alignReading("田た", "田た", model.SyntaxRuby)
	if got != "田た" {
		t.Errorf("alignReading = %q, want pass-through", got)
	}
}

func TestExtractKanji(t *testing.T) {
	words, err := testEngine().ExtractKanji("食べた日本みかん日本")
	if err != nil {
		t.Fatalf("ExtractKanji: %v", err)
	}
	// Dictionary forms, in token order, duplicates kept.
	want := []string{"食べる", "日本", "日本"}
	if len(words) != len(want) {
		t.Fatalf("ExtractKanji = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("ExtractKanji[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestExtractKanjiWithoutTokenizer(t *testing.T) {
	if _, err := New(nil).ExtractKanji("食べる"); err != ErrTokenizerNotReady {
		t.Errorf("err = %v, want ErrTokenizerNotReady", err)
	}
}
