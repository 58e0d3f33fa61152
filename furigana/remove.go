package furigana

import "regexp"

// annotationRe recognizes all three annotation syntaxes in one pass. One
// capture group is active per branch; the replacement concatenates the
// groups, so each full annotation collapses to its kanji-run component.
var annotationRe = regexp.MustCompile(
	`<ruby>(.*?)<rt>.*?</rt></ruby>` +
		`|\{(.+?)\|.+?\}` +
		`|(.+?)《.+?》`)

// Remove strips any mixture of the three annotation syntaxes back to bare
// surface text, leaving all other text untouched.
func (e *Engine) Remove(text string) string {
	return annotationRe.ReplaceAllString(text, "${1}${2}${3}")
}
