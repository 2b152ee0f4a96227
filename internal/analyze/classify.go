// Package analyze splits text into tokens and derives descriptive metrics.
// Everything here is pure: no I/O, no shared state, safe for concurrent use.
package analyze

import (
	"strings"
	"unicode"
)

// PunctuationSet lists every character counted as punctuation.
// '?' and quotes are deliberately absent.
const PunctuationSet = ".,/#!$%^&*;:{}=-_`~()"

// Classification holds the pieces a text splits into
type Classification struct {
	Characters  []rune   // Every code point of the input
	Words       []string // Maximal non-whitespace runs
	Sentences   []string // Segments between runs of . ! ?
	Paragraphs  []string // Non-empty segments between newlines
	Whitespace  []rune   // Characters matching unicode.IsSpace (U+0085 yes, U+FEFF no)
	Punctuation []rune   // Characters in PunctuationSet
}

// Classify splits text into characters, words, sentences, paragraphs,
// whitespace and punctuation. It is total: any string, including the empty
// one, yields a valid (possibly empty) classification.
func Classify(text string) Classification {
	c := Classification{
		Characters: []rune(text),
		Words:      strings.Fields(text),
		Sentences:  strings.FieldsFunc(text, IsSentenceTerminator),
		Paragraphs: strings.FieldsFunc(text, isNewline),
	}

	for _, r := range c.Characters {
		if unicode.IsSpace(r) {
			c.Whitespace = append(c.Whitespace, r)
		}
		if IsPunctuation(r) {
			c.Punctuation = append(c.Punctuation, r)
		}
	}

	return c
}

// IsPunctuation reports whether r belongs to PunctuationSet
func IsPunctuation(r rune) bool {
	return strings.ContainsRune(PunctuationSet, r)
}

// IsSentenceTerminator reports whether r ends a sentence
func IsSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isNewline(r rune) bool {
	return r == '\n'
}
