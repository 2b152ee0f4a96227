package analyze

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/ppiankov/textlens/internal/model"
)

// Average adult rates used for the time estimates
const (
	ReadingWPM  = 238
	SpeakingWPM = 183
)

// Analyze computes the metrics of text
func Analyze(text string) model.TextMetrics {
	c := Classify(text)
	return model.TextMetrics{
		CharCount:        len(c.Characters),
		WordCount:        len(c.Words),
		SentenceCount:    len(c.Sentences),
		ParagraphCount:   len(c.Paragraphs),
		SpaceCount:       len(c.Whitespace),
		PunctuationCount: len(c.Punctuation),
	}
}

// TopWords returns the n most frequent words of text, case-folded and with
// surrounding punctuation stripped. Ties are broken alphabetically.
// n <= 0 returns every word.
func TopWords(text string, n int) []model.WordFrequency {
	counts := make(map[string]int)
	for _, token := range strings.Fields(text) {
		word := normalizeToken(token)
		if word == "" {
			continue
		}
		counts[word]++
	}

	result := make([]model.WordFrequency, 0, len(counts))
	for word, count := range counts {
		result = append(result, model.WordFrequency{Word: word, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Word < result[j].Word
	})

	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

// ReadingTime estimates how long m's text takes to read silently
func ReadingTime(m model.TextMetrics) time.Duration {
	return wordsAt(m.WordCount, ReadingWPM)
}

// SpeakingTime estimates how long m's text takes to read aloud
func SpeakingTime(m model.TextMetrics) time.Duration {
	return wordsAt(m.WordCount, SpeakingWPM)
}

// BuildReport analyzes text and attaches the supplementary statistics.
// topN <= 0 leaves out the word frequency list.
func BuildReport(text string, topN int) model.Report {
	m := Analyze(text)
	r := model.Report{
		Metrics:      m,
		ReadingTime:  model.Duration(ReadingTime(m)),
		SpeakingTime: model.Duration(SpeakingTime(m)),
		AnalyzedAt:   time.Now().UTC(),
	}
	if topN > 0 {
		r.TopWords = TopWords(text, topN)
	}
	return r
}

func wordsAt(words, wpm int) time.Duration {
	if words <= 0 {
		return 0
	}
	d := time.Duration(float64(words) / float64(wpm) * float64(time.Minute))
	return d.Round(time.Second)
}

func normalizeToken(token string) string {
	token = strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(token)
}
