package furigana

import (
	"strings"

	"furiganagen/kanji"
	"furiganagen/model"
)

// annotator holds the per-call filter state for one Generate invocation.
type annotator struct {
	tok    Tokenizer
	scope  model.Scope
	syntax model.Syntax
	skip   map[rune]struct{}
	custom map[string]struct{}
}

// annotateUnit tokenizes one dedup unit and concatenates the per-token
// substitutions. Token surfaces concatenate back to the unit, so non-kanji
// content round-trips exactly.
func (a *annotator) annotateUnit(unit string, seen seenSet) string {
	var b strings.Builder
	for _, tk := range a.tok.Tokenize(unit) {
		b.WriteString(a.annotateToken(tk, seen))
	}
	return b.String()
}

// annotateToken applies the filter chain and, for tokens that survive it,
// the reading alignment. Filters short-circuit in a fixed order; each
// rejection emits the surface unchanged.
func (a *annotator) annotateToken(tk model.LexicalToken, seen seenSet) string {
	surface := tk.Surface
	if strings.HasPrefix(surface, placeholderPrefix) {
		return surface
	}
	if _, ok := a.custom[tk.BaseForm]; ok {
		return surface
	}
	if !kanji.ContainsKanji(surface) {
		return surface
	}
	if tk.Reading == "" || tk.WordType == model.WordUnknown {
		return surface
	}
	if a.scope != model.ScopeAll {
		if _, ok := seen[surface]; ok {
			return surface
		}
	}
	if allKanjiSkipped(surface, a.skip) {
		return surface
	}
	hira := kanji.KatakanaToHiragana(tk.Reading)
	if surface == hira {
		return surface
	}
	if a.scope != model.ScopeAll {
		seen[surface] = struct{}{}
	}
	return alignReading(surface, hira, a.syntax)
}

// allKanjiSkipped reports whether surface has at least one kanji and every
// kanji in it is in the skip set.
func allKanjiSkipped(surface string, skip map[rune]struct{}) bool {
	found := false
	for _, r := range surface {
		if !kanji.IsKanji(r) {
			continue
		}
		found = true
		if _, ok := skip[r]; !ok {
			return false
		}
	}
	return found
}

// alignReading walks surface and reading with parallel cursors and splits
// the reading into the sub-span belonging to each contiguous kanji run.
//
// After a kanji run, the reading slice ends where the hiragana form of the
// next surface character first occurs at or past the reading cursor. When
// the run ends the surface, or the lookup fails, the run consumes the rest
// of the reading. A failed mid-string lookup can therefore misalign later
// runs in the same token; that fallback is deliberate, matching the
// established behavior for such mismatches.
//
// Non-kanji characters are copied literally; the reading cursor advances
// when the character (normalized to hiragana) matches the current reading
// position, keeping later kanji runs aligned through okurigana.
func alignReading(surface, reading string, syntax model.Syntax) string {
	sr := []rune(surface)
	rr := []rune(reading)
	var b strings.Builder
	si, ri := 0, 0
	for si < len(sr) {
		if kanji.IsKanji(sr[si]) {
			runStart := si
			for si < len(sr) && kanji.IsKanji(sr[si]) {
				si++
			}
			run := string(sr[runStart:si])

			end := len(rr)
			if si < len(sr) {
				if idx := indexRune(rr, kanji.ToHiragana(sr[si]), ri); idx >= 0 {
					end = idx
				}
			}
			slice := string(rr[ri:end])
			ri = end

			// A run whose reading is its own text needs no annotation.
			if run != slice {
				b.WriteString(formatAnnotation(syntax, run, slice))
			} else {
				b.WriteString(run)
			}
			continue
		}
		b.WriteRune(sr[si])
		if ri < len(rr) && rr[ri] == kanji.ToHiragana(sr[si]) {
			ri++
		}
		si++
	}
	return b.String()
}

func indexRune(rr []rune, r rune, from int) int {
	for i := from; i < len(rr); i++ {
		if rr[i] == r {
			return i
		}
	}
	return -1
}

// formatAnnotation renders one (kanji run, reading) pair in the requested
// wire syntax. All three forms are recognized by Remove.
func formatAnnotation(s model.Syntax, run, reading string) string {
	switch s {
	case model.SyntaxMarkdown:
		return "{" + run + "|" + reading + "}"
	case model.SyntaxNovel:
		return run + "《" + reading + "》"
	default:
		return "<ruby>" + run + "<rt>" + reading + "</rt></ruby>"
	}
}
