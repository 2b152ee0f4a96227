package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ppiankov/textlens/internal/model"
)

type mockLookuper struct {
	failOn string
}

func (m *mockLookuper) Lookup(ctx context.Context, word string) (model.WordInfo, error) {
	if word == m.failOn {
		return model.EmptyWordInfo(), errors.New("lookup error")
	}
	info := model.EmptyWordInfo()
	info.Definition = "def of " + word
	return info, nil
}

func TestBatchLookup_LookupWords(t *testing.T) {
	batch := NewBatchLookup(&mockLookuper{failOn: "bad"}, 2)

	words := []string{"alpha", "bad", "gamma", "delta"}
	results := batch.LookupWords(context.Background(), words)

	if len(results) != len(words) {
		t.Fatalf("expected %d results, got %d", len(words), len(results))
	}
	for i, res := range results {
		if res.Word != words[i] {
			t.Errorf("result %d is for %q, want %q", i, res.Word, words[i])
		}
	}
	if results[1].Error == nil {
		t.Error("expected error for 'bad'")
	}
	if results[2].Info.Definition != "def of gamma" {
		t.Errorf("unexpected info: %+v", results[2].Info)
	}
}

func TestBatchLookup_Empty(t *testing.T) {
	results := NewBatchLookup(&mockLookuper{}, 2).LookupWords(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestBatchLookup_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewBatchLookup(&mockLookuper{}, 1).LookupWords(ctx, []string{"a", "b", "c"})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, res := range results {
		if res == nil {
			t.Fatal("expected every slot to be filled")
		}
	}
}

func TestReadWordsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := strings.Join([]string{
		"# vocabulary",
		"serendipity",
		"",
		"  ephemeral  ",
		"Serendipity",
		"ubiquitous",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := ReadWordsFromFile(path)
	if err != nil {
		t.Fatalf("ReadWordsFromFile failed: %v", err)
	}
	want := []string{"serendipity", "ephemeral", "ubiquitous"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %q, want %q", words, want)
	}
}

func TestBatchLookup_LookupFileMissing(t *testing.T) {
	_, err := NewBatchLookup(&mockLookuper{}, 1).LookupFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBatchLookup_LookupFileWithLeadingWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("Happy\nsad\n# done\nangry\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := NewBatchLookup(&mockLookuper{}, 2).LookupFile(context.Background(), path, "happy", "calm", "SAD")
	if err != nil {
		t.Fatalf("LookupFile failed: %v", err)
	}

	var got []string
	for _, res := range results {
		got = append(got, res.Word)
	}
	want := []string{"happy", "calm", "SAD", "angry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("looked up %q, want %q", got, want)
	}
}

func TestBatchLookup_LookupWordsDedupes(t *testing.T) {
	results := NewBatchLookup(&mockLookuper{}, 2).LookupWords(context.Background(), []string{"alpha", " Alpha ", "", "beta", "ALPHA"})
	if len(results) != 2 || results[0].Word != "alpha" || results[1].Word != "beta" {
		t.Errorf("unexpected results %+v", results)
	}
}

func TestDedupeWords(t *testing.T) {
	got := DedupeWords([]string{"Word", "word", "  other ", "", "WORD", "other"})
	want := []string{"Word", "other"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupeWords = %q, want %q", got, want)
	}
}
