package furigana

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPrefix must never occur naturally in input text. Tokens whose
// surface starts with it are passed through without annotation.
const placeholderPrefix = "__EXCLUDED_PLACEHOLDER_"

func placeholderFor(i int) string {
	return fmt.Sprintf("%s%d__", placeholderPrefix, i)
}

// Exclusion catalog. One combined alternation; Go's regexp matches
// alternatives leftmost-first, so containing patterns are listed before
// patterns they contain (fenced code before inline code, heading lines
// before hashtags) and a match is always masked whole.
const exclusionCatalog = `<ruby>.*?</rt></ruby>` + // existing ruby annotations
	`|\{.*?\|.*?\}` + // markdown-style ruby
	`|.*?《.*?》` + // japanese novel ruby
	`|\[\[.*?\]\]` + // wiki-style internal links
	`|\[.*?\]\(.*?\)` + // markdown links
	`|https?://\S+` + // bare URLs
	"|```(?s:.*?)```" + // fenced code blocks
	"|`[^`]*`" + // inline code spans
	`|<%.*?%>` + // templater command tags
	`|\[\^.*?\]` + // footnote references
	`|\A---\n(?s:.*?)\n---` + // leading YAML front matter
	`|%%.*?%%` + // comment spans
	`|(?m:^>\s*\[!.+?\].*$)` + // callout title lines
	`|\*\*\*.*?\*\*\*|\*\*.*?\*\*|\*.*?\*|~~.*?~~|==.*?==` // formatting spans

const headingBranch = `(?m:^#{1,6} .+$)|`

const tagBranch = `|#\S+` // hashtag-style tags, after the heading branch

var (
	exclusionRe         = regexp.MustCompile(exclusionCatalog + tagBranch)
	exclusionHeadingsRe = regexp.MustCompile(headingBranch + exclusionCatalog + tagBranch)
)

// maskExclusions replaces every catalog match with an indexed placeholder,
// in order of appearance, and returns the matched spans for restoration.
func maskExclusions(text string, excludeHeadings bool) (string, []string) {
	re := exclusionRe
	if excludeHeadings {
		re = exclusionHeadingsRe
	}
	var placeholders []string
	masked := re.ReplaceAllStringFunc(text, func(m string) string {
		p := placeholderFor(len(placeholders))
		placeholders = append(placeholders, m)
		return p
	})
	return masked, placeholders
}

// restoreExclusions substitutes each placeholder back by positional index.
// Exactly one occurrence per placeholder exists after processing, since the
// engine never rewrites placeholder text.
func restoreExclusions(text string, placeholders []string) string {
	for i, original := range placeholders {
		text = strings.Replace(text, placeholderFor(i), original, 1)
	}
	return text
}
