package kanji

// Level is a JLPT proficiency tier, N5 (easiest) through N1 (hardest).
type Level string

const (
	N5 Level = "n5"
	N4 Level = "n4"
	N3 Level = "n3"
	N2 Level = "n2"
	N1 Level = "n1"
)

// Levels lists all tiers from easiest to hardest.
func Levels() []Level {
	return []Level{N5, N4, N3, N2, N1}
}

// referenceSets maps each tier to its reference kanji, one rune per kanji.
var referenceSets = map[Level]string{
	N5: jlptN5,
	N4: jlptN4,
	N3: jlptN3,
	N2: jlptN2,
	N1: jlptN1,
}

// LevelSet returns the reference kanji of one tier as a membership set.
func LevelSet(l Level) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range referenceSets[l] {
		set[r] = struct{}{}
	}
	return set
}

// SkipSet builds the set of kanji to suppress: the union of reference sets
// of every level toggled off in include. Levels missing from the map count
// as included, so a nil map suppresses nothing.
func SkipSet(include map[Level]bool) map[rune]struct{} {
	skip := make(map[rune]struct{})
	for _, l := range Levels() {
		on, ok := include[l]
		if !ok || on {
			continue
		}
		for _, r := range referenceSets[l] {
			skip[r] = struct{}{}
		}
	}
	return skip
}
