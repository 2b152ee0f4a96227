package model

import (
	"fmt"
	"strings"
)

// NotAvailable marks a WordInfo field that has no data
const NotAvailable = "N/A"

// WordInfo holds dictionary data for a single word
type WordInfo struct {
	Definition   string `json:"definition" yaml:"definition"`
	PartOfSpeech string `json:"part_of_speech" yaml:"part_of_speech"`
	Synonyms     string `json:"synonyms" yaml:"synonyms"`
	Antonyms     string `json:"antonyms" yaml:"antonyms"`
}

// EmptyWordInfo returns a WordInfo with every field set to NotAvailable
func EmptyWordInfo() WordInfo {
	return WordInfo{
		Definition:   NotAvailable,
		PartOfSpeech: NotAvailable,
		Synonyms:     NotAvailable,
		Antonyms:     NotAvailable,
	}
}

// Available reports whether at least one field carries data
func (w WordInfo) Available() bool {
	for _, v := range []string{w.Definition, w.PartOfSpeech, w.Synonyms, w.Antonyms} {
		if v != "" && v != NotAvailable {
			return true
		}
	}
	return false
}

// Mode selects how a session treats its input
type Mode int

const (
	ModeWord      Mode = iota // Single word, dictionary lookup supported
	ModeParagraph             // Free text, metrics only
)

func (m Mode) String() string {
	switch m {
	case ModeWord:
		return "word"
	case ModeParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// ParseMode converts a user-supplied mode name into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word", "w":
		return ModeWord, nil
	case "paragraph", "para", "p":
		return ModeParagraph, nil
	default:
		return ModeWord, fmt.Errorf("unknown mode: %q (supported: word, paragraph)", s)
	}
}

// MarshalText renders the mode by name in JSON and YAML output
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts any name ParseMode accepts
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
