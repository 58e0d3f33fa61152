package model

// LexicalToken represents one morphologically segmented unit of input as
// produced by the analyzer. Reading is katakana and may be empty for words
// the analyzer does not know.
type LexicalToken struct {
	Surface  string   `json:"surface"`
	BaseForm string   `json:"base_form,omitempty"`
	Reading  string   `json:"reading,omitempty"`
	POS      string   `json:"pos,omitempty"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	WordType WordType `json:"word_type"`
}

// WordType classifies how the analyzer resolved a token.
type WordType string

const (
	WordKnown   WordType = "KNOWN"
	WordUnknown WordType = "UNKNOWN"
	WordUser    WordType = "USER"
)
