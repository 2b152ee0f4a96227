package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/textlens/internal/model"
)

// Lookuper fetches dictionary data for a word
type Lookuper interface {
	Lookup(ctx context.Context, word string) (model.WordInfo, error)
}

// LookupJob looks up one word
type LookupJob struct {
	Word     string
	Lookuper Lookuper
}

// Execute runs the lookup
func (j *LookupJob) Execute(ctx context.Context) Result {
	info, err := j.Lookuper.Lookup(ctx, j.Word)
	return &LookupResult{Word: j.Word, Info: info, Error: err}
}

// LookupResult is the outcome of one LookupJob
type LookupResult struct {
	Word  string
	Info  model.WordInfo
	Error error
}

// GetError returns the lookup error, if any
func (r *LookupResult) GetError() error {
	return r.Error
}

// BatchLookup looks up many words concurrently
type BatchLookup struct {
	lookuper    Lookuper
	concurrency int
}

// NewBatchLookup creates a batch runner with the given worker count
func NewBatchLookup(lookuper Lookuper, concurrency int) *BatchLookup {
	return &BatchLookup{
		lookuper:    lookuper,
		concurrency: concurrency,
	}
}

// LookupWords returns one result per distinct word, in input order.
// Words differing only in case are looked up once.
func (b *BatchLookup) LookupWords(ctx context.Context, words []string) []*LookupResult {
	words = DedupeWords(words)
	if len(words) == 0 {
		return []*LookupResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, word := range words {
		if !pool.Submit(&LookupJob{Word: word, Lookuper: b.lookuper}) {
			break
		}
	}

	raw := pool.Wait()

	results := make([]*LookupResult, len(words))
	for i, word := range words {
		if i < len(raw) && raw[i] != nil {
			results[i] = raw[i].(*LookupResult)
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		results[i] = &LookupResult{Word: word, Info: model.EmptyWordInfo(), Error: fmt.Errorf("not run: %w", err)}
	}

	return results
}

// LookupFile looks up leading followed by the words read from path
func (b *BatchLookup) LookupFile(ctx context.Context, path string, leading ...string) ([]*LookupResult, error) {
	words, err := ReadWordsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return b.LookupWords(ctx, append(append([]string(nil), leading...), words...)), nil
}

// ReadWordsFromFile reads one word per line, skipping blank lines and
// '#' comments. Duplicates (case-insensitive) keep their first occurrence.
func ReadWordsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var words []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return DedupeWords(words), nil
}

// DedupeWords drops blank words and case-insensitive repeats, keeping the
// first spelling of each
func DedupeWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	unique := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		key := strings.ToLower(word)
		if word == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, word)
	}
	return unique
}
