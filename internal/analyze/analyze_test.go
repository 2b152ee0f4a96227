package analyze

import (
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ppiankov/textlens/internal/model"
)

func TestAnalyze_Examples(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.TextMetrics
	}{
		{
			name: "empty",
			text: "",
			want: model.TextMetrics{},
		},
		{
			name: "simple sentence",
			text: "Hello world.",
			want: model.TextMetrics{CharCount: 12, WordCount: 2, SentenceCount: 1, ParagraphCount: 1, SpaceCount: 1, PunctuationCount: 1},
		},
		{
			name: "three lines",
			text: "Line one.\nLine two!\nLine three?",
			want: model.TextMetrics{CharCount: 31, WordCount: 6, SentenceCount: 3, ParagraphCount: 3, SpaceCount: 5, PunctuationCount: 2},
		},
		{
			name: "punctuation without spaces",
			text: "a,b;c:d",
			want: model.TextMetrics{CharCount: 7, WordCount: 1, SentenceCount: 1, ParagraphCount: 1, SpaceCount: 0, PunctuationCount: 3},
		},
		{
			name: "terminator runs collapse",
			text: "Wait... what?!",
			want: model.TextMetrics{CharCount: 14, WordCount: 2, SentenceCount: 2, ParagraphCount: 1, SpaceCount: 1, PunctuationCount: 4},
		},
		{
			name: "blank lines between paragraphs",
			text: "first\n\n\nsecond",
			want: model.TextMetrics{CharCount: 14, WordCount: 2, SentenceCount: 1, ParagraphCount: 2, SpaceCount: 3, PunctuationCount: 0},
		},
		{
			// NEL and NBSP separate words; the byte order mark is not whitespace
			name: "unicode whitespace",
			text: "a\u0085b\u00a0c\uFEFFd",
			want: model.TextMetrics{CharCount: 7, WordCount: 3, SentenceCount: 1, ParagraphCount: 1, SpaceCount: 2, PunctuationCount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			if got != tt.want {
				t.Errorf("Analyze(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyze_CharCountIsRuneCount(t *testing.T) {
	inputs := []string{"héllo wörld", "日本語のテキスト。", "emoji 🙂 here", "tab\tand\nnewline", "\xff\xfe invalid"}
	for _, s := range inputs {
		if got, want := Analyze(s).CharCount, utf8.RuneCountInString(s); got != want {
			t.Errorf("CharCount(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestAnalyze_WhitespaceOnlyHasNoWords(t *testing.T) {
	inputs := []string{" ", "   ", "\t\t", "\n", " \t\n\r\f\v ", "  "}
	for _, s := range inputs {
		m := Analyze(s)
		if m.WordCount != 0 {
			t.Errorf("WordCount(%q) = %d, want 0", s, m.WordCount)
		}
		if m.SpaceCount != utf8.RuneCountInString(s) {
			t.Errorf("SpaceCount(%q) = %d, want %d", s, m.SpaceCount, utf8.RuneCountInString(s))
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := "It was the best of times; it was the worst of times.\n\nAnd so on!"
	first := Analyze(text)
	second := Analyze(text)
	if first != second {
		t.Errorf("Analyze not idempotent: %+v vs %+v", first, second)
	}
}

func TestAnalyze_TrailingSpaceAfterTerminatorIsASegment(t *testing.T) {
	// A whitespace-only tail still counts as a non-empty segment
	if got := Analyze("Hi. ").SentenceCount; got != 2 {
		t.Errorf("SentenceCount = %d, want 2", got)
	}
	if got := Analyze("Hi.").SentenceCount; got != 1 {
		t.Errorf("SentenceCount = %d, want 1", got)
	}
}

func TestClassify_Collections(t *testing.T) {
	c := Classify("  Hi, you!\nBye (now).  ")

	wantWords := []string{"Hi,", "you!", "Bye", "(now)."}
	if !reflect.DeepEqual(c.Words, wantWords) {
		t.Errorf("Words = %q, want %q", c.Words, wantWords)
	}

	wantSentences := []string{"  Hi, you", "\nBye (now)", "  "}
	if !reflect.DeepEqual(c.Sentences, wantSentences) {
		t.Errorf("Sentences = %q, want %q", c.Sentences, wantSentences)
	}

	wantParagraphs := []string{"  Hi, you!", "Bye (now).  "}
	if !reflect.DeepEqual(c.Paragraphs, wantParagraphs) {
		t.Errorf("Paragraphs = %q, want %q", c.Paragraphs, wantParagraphs)
	}

	if string(c.Punctuation) != ",!()." {
		t.Errorf("Punctuation = %q", string(c.Punctuation))
	}
	if len(c.Whitespace) != 7 {
		t.Errorf("Whitespace count = %d, want 7", len(c.Whitespace))
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	c := Classify("")
	if len(c.Characters)+len(c.Words)+len(c.Sentences)+len(c.Paragraphs)+len(c.Whitespace)+len(c.Punctuation) != 0 {
		t.Errorf("expected all-empty classification, got %+v", c)
	}
}

func TestIsPunctuation(t *testing.T) {
	for _, r := range PunctuationSet {
		if !IsPunctuation(r) {
			t.Errorf("expected %q to be punctuation", r)
		}
	}
	for _, r := range "?'\"<>[]|@+a1 " {
		if IsPunctuation(r) {
			t.Errorf("expected %q not to be punctuation", r)
		}
	}
}

func TestTopWords(t *testing.T) {
	got := TopWords("The cat and the hat. THE end!", 2)
	want := []model.WordFrequency{{Word: "the", Count: 3}, {Word: "and", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopWords = %+v, want %+v", got, want)
	}

	all := TopWords("one two two -- ...", 0)
	if len(all) != 2 {
		t.Errorf("expected punctuation-only tokens to be skipped, got %+v", all)
	}
}

func TestReadingAndSpeakingTime(t *testing.T) {
	if got := ReadingTime(model.TextMetrics{WordCount: ReadingWPM}); got != time.Minute {
		t.Errorf("ReadingTime = %v, want 1m", got)
	}
	if got := SpeakingTime(model.TextMetrics{WordCount: SpeakingWPM * 2}); got != 2*time.Minute {
		t.Errorf("SpeakingTime = %v, want 2m", got)
	}
	if got := ReadingTime(model.TextMetrics{}); got != 0 {
		t.Errorf("ReadingTime of empty text = %v, want 0", got)
	}
}

func TestBuildReport(t *testing.T) {
	text := strings.Repeat("word ", 476)
	r := BuildReport(text, 1)
	if r.Metrics.WordCount != 476 {
		t.Errorf("WordCount = %d, want 476", r.Metrics.WordCount)
	}
	if r.ReadingTime != model.Duration(2*time.Minute) {
		t.Errorf("ReadingTime = %v, want 2m", r.ReadingTime)
	}
	if len(r.TopWords) != 1 || r.TopWords[0].Word != "word" {
		t.Errorf("TopWords = %+v", r.TopWords)
	}
	if r.AnalyzedAt.IsZero() {
		t.Error("expected AnalyzedAt to be set")
	}

	if r := BuildReport(text, 0); r.TopWords != nil {
		t.Errorf("expected no top words for topN 0, got %+v", r.TopWords)
	}
}
