package cedict

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrSkipLine signals that a line is blank or a comment and carries no entry.
var ErrSkipLine = errors.New("skip line")

// MalformedLineError describes a line that does not follow the CC-CEDICT
// grammar. It carries the original line text for diagnostics.
type MalformedLineError struct {
	Line   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return "malformed line: " + e.Reason
}

// ParseLine parses a single CC-CEDICT line.
//
// It returns ErrSkipLine for blank lines and comments, or a
// *MalformedLineError when the line does not follow the grammar. The
// returned entry has empty pinyin/zhuyin fields; those are derived from
// the traditional headword afterwards.
func ParseLine(raw string) (Entry, error) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, ErrSkipLine
	}
	if !utf8.ValidString(line) {
		return Entry{}, &MalformedLineError{Line: raw, Reason: "line is not valid UTF-8"}
	}

	// <traditional> <simplified> <pronunciation and glosses>
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 3 {
		return Entry{}, &MalformedLineError{Line: raw, Reason: "expected headwords, pronunciation and glosses"}
	}
	traditional, simplified, rest := parts[0], parts[1], parts[2]
	if simplified == "" {
		return Entry{}, &MalformedLineError{Line: raw, Reason: "empty simplified headword"}
	}

	pronunciation, glossPart, err := splitPronunciation(rest)
	if err != nil {
		return Entry{}, &MalformedLineError{Line: raw, Reason: err.Error()}
	}

	meanings := splitGlosses(glossPart)
	if len(meanings) == 0 {
		return Entry{}, &MalformedLineError{Line: raw, Reason: "empty gloss list"}
	}

	return Entry{
		Traditional:   traditional,
		Simplified:    simplified,
		Meaning:       meanings,
		IsIdiom:       IsIdiom(meanings),
		Pronunciation: pronunciation,
	}, nil
}

// splitPronunciation extracts the bracketed pronunciation tokens and
// returns them together with the remaining gloss portion of the line.
func splitPronunciation(rest string) ([]string, string, error) {
	open := strings.Index(rest, "[")
	if open == -1 {
		return nil, "", fmt.Errorf("missing pronunciation brackets")
	}
	length := strings.Index(rest[open+1:], "]")
	if length == -1 {
		return nil, "", fmt.Errorf("missing pronunciation brackets")
	}
	tokens := strings.Fields(rest[open+1 : open+1+length])
	tail := strings.TrimSpace(rest[open+1+length+1:])
	return tokens, tail, nil
}

// splitGlosses splits the /a/b/c/ tail into its glosses, discarding
// fragments that are empty after trimming.
func splitGlosses(s string) []string {
	if len(s) < 2 || !strings.HasPrefix(s, "/") || !strings.HasSuffix(s, "/") {
		return nil
	}
	var glosses []string
	for _, g := range strings.Split(s[1:len(s)-1], "/") {
		if g = strings.TrimSpace(g); g != "" {
			glosses = append(glosses, g)
		}
	}
	return glosses
}
