package model

// TextMetrics holds the descriptive counts derived from a piece of text.
// It is a plain value: recomputing it from the same text always yields the
// same result.
type TextMetrics struct {
	CharCount        int `json:"char_count" yaml:"char_count"`               // Characters (code points), whitespace included
	WordCount        int `json:"word_count" yaml:"word_count"`               // Maximal non-whitespace runs
	SentenceCount    int `json:"sentence_count" yaml:"sentence_count"`       // Segments between runs of . ! ?
	ParagraphCount   int `json:"paragraph_count" yaml:"paragraph_count"`     // Non-empty newline-separated segments
	SpaceCount       int `json:"space_count" yaml:"space_count"`             // Whitespace characters
	PunctuationCount int `json:"punctuation_count" yaml:"punctuation_count"` // Characters in the punctuation set
}

// IsZero reports whether every count is zero
func (m TextMetrics) IsZero() bool {
	return m == TextMetrics{}
}
