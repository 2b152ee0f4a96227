// Package session holds the state of one interactive analysis: the input
// mode, the current text, its metrics, and the last dictionary result.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/ppiankov/textlens/internal/analyze"
	"github.com/ppiankov/textlens/internal/model"
)

var (
	// ErrNotWordMode is returned by ProcessWord outside word mode
	ErrNotWordMode = errors.New("dictionary lookup is only available in word mode")

	// ErrStaleLookup is returned when the text or mode changed while a
	// lookup was in flight; its result is discarded
	ErrStaleLookup = errors.New("lookup result discarded: input changed while it was in flight")

	// ErrNoLookup is returned by ProcessWord when the session has no lookup backend
	ErrNoLookup = errors.New("no dictionary configured")
)

// Lookuper fetches dictionary data for a word
type Lookuper interface {
	Lookup(ctx context.Context, word string) (model.WordInfo, error)
}

// State is a point-in-time copy of a session
type State struct {
	Mode     model.Mode        `json:"mode" yaml:"mode"`
	Text     string            `json:"text" yaml:"text"`
	Metrics  model.TextMetrics `json:"metrics" yaml:"metrics"`
	WordInfo model.WordInfo    `json:"word_info" yaml:"word_info"`
}

// Session is safe for concurrent use; ProcessWord may complete on another
// goroutine while the text is being edited.
//
// Every SetMode and SetText bumps a generation counter. A lookup records
// the generation it started under and only applies its result if the
// counter is unchanged when it completes.
type Session struct {
	lookup Lookuper

	mu         sync.Mutex
	mode       model.Mode
	text       string
	metrics    model.TextMetrics
	wordInfo   model.WordInfo
	generation uint64
}

// New creates a session in word mode with empty text
func New(lookup Lookuper) *Session {
	return &Session{
		lookup:   lookup,
		mode:     model.ModeWord,
		wordInfo: model.EmptyWordInfo(),
	}
}

// SetMode switches mode and clears text, metrics and word info
func (s *Session) SetMode(m model.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = m
	s.text = ""
	s.metrics = model.TextMetrics{}
	s.wordInfo = model.EmptyWordInfo()
	s.generation++
}

// SetText replaces the text and recomputes its metrics. Word info is
// cleared; it is only refreshed by ProcessWord.
func (s *Session) SetText(text string) model.TextMetrics {
	metrics := analyze.Analyze(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	s.metrics = metrics
	s.wordInfo = model.EmptyWordInfo()
	s.generation++
	return metrics
}

// ProcessWord looks up the current text and stores the result.
//
// It blocks until the lookup finishes; callers wanting asynchronous
// behaviour run it on their own goroutine. On failure the stored word info
// is reset to sentinel values and the error is returned. If the input
// changed in the meantime nothing is stored and ErrStaleLookup is returned,
// joined with the lookup error if there was one.
func (s *Session) ProcessWord(ctx context.Context) (model.WordInfo, error) {
	s.mu.Lock()
	if s.mode != model.ModeWord {
		s.mu.Unlock()
		return model.EmptyWordInfo(), ErrNotWordMode
	}
	if s.lookup == nil {
		s.mu.Unlock()
		return model.EmptyWordInfo(), ErrNoLookup
	}
	gen, text := s.generation, s.text
	s.mu.Unlock()

	info, err := s.lookup.Lookup(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return model.EmptyWordInfo(), errors.Join(ErrStaleLookup, err)
	}

	if err != nil {
		s.wordInfo = model.EmptyWordInfo()
		return s.wordInfo, err
	}

	s.wordInfo = info
	return info, nil
}

// Mode returns the current input mode
func (s *Session) Mode() model.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Text returns the current input text
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Metrics returns the metrics of the current text
func (s *Session) Metrics() model.TextMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// WordInfo returns the last stored lookup result
func (s *Session) WordInfo() model.WordInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wordInfo
}

// Snapshot returns a consistent copy of the whole state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Mode:     s.mode,
		Text:     s.text,
		Metrics:  s.metrics,
		WordInfo: s.wordInfo,
	}
}
