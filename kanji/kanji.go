// Package kanji classifies Japanese characters and carries the JLPT
// reference sets used to filter which kanji receive reading annotations.
package kanji

// IsKanji reports whether r is a kanji character (CJK unified ideographs
// range used for annotation decisions, U+4E00..U+9FAF).
func IsKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FAF
}

// ContainsKanji reports whether s contains at least one kanji character.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// ToHiragana maps a katakana code point (U+30A1..U+30FA) to its hiragana
// counterpart; every other rune is returned unchanged.
func ToHiragana(r rune) rune {
	if r >= 0x30A1 && r <= 0x30FA {
		return r - 0x60
	}
	return r
}

// KatakanaToHiragana normalizes every katakana rune in s to hiragana.
// Analyzer readings are katakana; annotations are emitted in hiragana.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = ToHiragana(r)
	}
	return string(runes)
}
