package model

import "time"

// Report bundles text metrics with the supplementary statistics shown by
// the analyze command
type Report struct {
	Metrics      TextMetrics     `json:"metrics" yaml:"metrics"`
	TopWords     []WordFrequency `json:"top_words,omitempty" yaml:"top_words,omitempty"`
	ReadingTime  Duration        `json:"reading_time" yaml:"reading_time"`   // At ReadingWPM
	SpeakingTime Duration        `json:"speaking_time" yaml:"speaking_time"` // At SpeakingWPM
	Source       string          `json:"source,omitempty" yaml:"source,omitempty"`
	AnalyzedAt   time.Time       `json:"analyzed_at" yaml:"analyzed_at"`
}

// WordFrequency counts how often a normalized word occurs in a text
type WordFrequency struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// LookupReport is the output of a dictionary lookup for one word
type LookupReport struct {
	Word    string      `json:"word" yaml:"word"`
	Metrics TextMetrics `json:"metrics" yaml:"metrics"`
	Info    WordInfo    `json:"info" yaml:"info"`
	Error   string      `json:"error,omitempty" yaml:"error,omitempty"`
}
