package cedict

import "strings"

// idiomMarker is the literal substring CC-CEDICT uses inside glosses of
// idiomatic expressions, e.g. "lit. to draw a snake and add feet (idiom)".
const idiomMarker = "(idiom)"

// Entry represents a single dictionary entry.
type Entry struct {
	Traditional string   `json:"traditional"`
	Simplified  string   `json:"simplified"`
	Pinyin      string   `json:"pinyin"`
	Zhuyin      string   `json:"zhuyin"`
	Meaning     []string `json:"meaning"`
	IsIdiom     bool     `json:"is_idiom"`

	// Pronunciation holds the tokens of the bracketed field as they
	// appear in the source line. The pinyin/zhuyin output fields are
	// derived from the traditional headword instead, so these tokens
	// are kept for diagnostics only and are not serialized.
	Pronunciation []string `json:"-"`
}

// IsIdiom reports whether any gloss contains the CC-CEDICT idiom marker.
func IsIdiom(meanings []string) bool {
	for _, m := range meanings {
		if strings.Contains(m, idiomMarker) {
			return true
		}
	}
	return false
}
