package lexicon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/textlens/internal/model"
)

// Separator joins multiple definitions, synonyms or antonyms
const Separator = ", "

// Wire format of api.dictionaryapi.dev. Every list may be absent.
type entry struct {
	Word     string    `json:"word"`
	Meanings []meaning `json:"meanings"`
}

type meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

type definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

var errNotArray = errors.New("expected a JSON array of entries")

// decodeEntries parses a response body. Anything but a JSON array of
// objects (null elements allowed) is rejected.
func decodeEntries(body []byte) ([]entry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}

	var entries []entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

// normalize turns service entries into a WordInfo.
// The first meaning, across entries in order, with a non-empty part of
// speech is used. No such meaning yields the all-sentinel WordInfo.
func normalize(entries []entry) model.WordInfo {
	m, ok := firstClassifiedMeaning(entries)
	if !ok {
		return model.EmptyWordInfo()
	}

	var defs, syns, ants []string
	for _, d := range m.Definitions {
		defs = appendNonEmpty(defs, d.Definition)
		syns = append(syns, d.Synonyms...)
		ants = append(ants, d.Antonyms...)
	}
	syns = append(syns, m.Synonyms...)
	ants = append(ants, m.Antonyms...)

	return model.WordInfo{
		Definition:   joinOrSentinel(defs),
		PartOfSpeech: strings.TrimSpace(m.PartOfSpeech),
		Synonyms:     joinOrSentinel(dedupe(syns)),
		Antonyms:     joinOrSentinel(dedupe(ants)),
	}
}

func firstClassifiedMeaning(entries []entry) (meaning, bool) {
	for _, e := range entries {
		for _, m := range e.Meanings {
			if strings.TrimSpace(m.PartOfSpeech) != "" {
				return m, true
			}
		}
	}
	return meaning{}, false
}

func appendNonEmpty(list []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		return append(list, s)
	}
	return list
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := list[:0:0]
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func joinOrSentinel(list []string) string {
	if len(list) == 0 {
		return model.NotAvailable
	}
	return strings.Join(list, Separator)
}
