package furigana

import (
	"strings"
	"unicode/utf8"

	"furiganagen/model"
)

// seenSet tracks surface forms already annotated within one dedup unit.
type seenSet map[string]struct{}

// processScoped partitions masked text into dedup units, runs annotate over
// each with a fresh seen set, and rejoins with the exact separators used to
// split. PARAGRAPH splits on newline, SENTENCE additionally on the
// zero-width boundary after 。！？. ENTIRE_TEXT and ALL process the whole
// text as one unit; ALL simply never consults the seen set.
func processScoped(text string, scope model.Scope, annotate func(unit string, seen seenSet) string) string {
	switch scope {
	case model.ScopeParagraph:
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = annotate(line, make(seenSet))
		}
		return strings.Join(lines, "\n")
	case model.ScopeSentence:
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			var b strings.Builder
			for _, s := range splitSentences(line) {
				if strings.TrimSpace(s) == "" {
					b.WriteString(s)
					continue
				}
				b.WriteString(annotate(s, make(seenSet)))
			}
			lines[i] = b.String()
		}
		return strings.Join(lines, "\n")
	default: // ENTIRE_TEXT, ALL
		return annotate(text, make(seenSet))
	}
}

// splitSentences cuts a paragraph immediately after each 。！？ terminator.
// The pieces concatenate back to the paragraph exactly.
func splitSentences(paragraph string) []string {
	var out []string
	start := 0
	for i, r := range paragraph {
		switch r {
		case '。', '！', '？':
			end := i + utf8.RuneLen(r)
			out = append(out, paragraph[start:end])
			start = end
		}
	}
	if start < len(paragraph) || len(out) == 0 {
		out = append(out, paragraph[start:])
	}
	return out
}
