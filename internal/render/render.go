// Package render writes analysis results as aligned text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/textlens/internal/model"
	"github.com/ppiankov/textlens/internal/worker"
)

// Format selects an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %q (supported: text, json, yaml)", s)
	}
}

// Encode writes v as JSON or YAML. Text output has a dedicated writer per type.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured encoding", format)
	}
}

// row is one label/value line of a text block
type row struct {
	label string
	value string
}

// writeRows aligns values on the widest label, measured in terminal cells
func writeRows(w io.Writer, rows []row) error {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.label))
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(r.label, width), r.value); err != nil {
			return err
		}
	}
	return nil
}

func metricRows(m model.TextMetrics) []row {
	return []row{
		{"Characters", fmt.Sprint(m.CharCount)},
		{"Words", fmt.Sprint(m.WordCount)},
		{"Sentences", fmt.Sprint(m.SentenceCount)},
		{"Paragraphs", fmt.Sprint(m.ParagraphCount)},
		{"Spaces", fmt.Sprint(m.SpaceCount)},
		{"Punctuation", fmt.Sprint(m.PunctuationCount)},
	}
}

func wordInfoRows(info model.WordInfo) []row {
	return []row{
		{"Definition", info.Definition},
		{"Part of speech", info.PartOfSpeech},
		{"Synonyms", info.Synonyms},
		{"Antonyms", info.Antonyms},
	}
}

// Metrics writes the six counts as an aligned block
func Metrics(w io.Writer, m model.TextMetrics) error {
	return writeRows(w, metricRows(m))
}

// WordInfo writes dictionary data as an aligned block
func WordInfo(w io.Writer, info model.WordInfo) error {
	return writeRows(w, wordInfoRows(info))
}

// Report writes a full analysis report
func Report(w io.Writer, r *model.Report) error {
	var b strings.Builder
	if r.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", r.Source)
	}
	b.WriteString("Metrics:\n")
	_ = writeRows(&b, metricRows(r.Metrics))

	b.WriteString("Estimates:\n")
	_ = writeRows(&b, []row{
		{"Reading time", formatDuration(time.Duration(r.ReadingTime))},
		{"Speaking time", formatDuration(time.Duration(r.SpeakingTime))},
	})

	if len(r.TopWords) > 0 {
		b.WriteString("Top words:\n")
		rows := make([]row, len(r.TopWords))
		for i, wf := range r.TopWords {
			rows[i] = row{wf.Word, fmt.Sprint(wf.Count)}
		}
		_ = writeRows(&b, rows)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Lookup writes one looked-up word with its metrics and dictionary data
func Lookup(w io.Writer, r *model.LookupReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Word: %s\n", r.Word)
	b.WriteString("Metrics:\n")
	_ = writeRows(&b, metricRows(r.Metrics))
	b.WriteString("Dictionary:\n")
	_ = writeRows(&b, wordInfoRows(r.Info))
	if r.Error != "" {
		fmt.Fprintf(&b, "Error: %s\n", r.Error)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// batchColumnLimit caps the definition column of the batch table
const batchColumnLimit = 60

// BatchTable writes batch lookup results as a table, one word per line
func BatchTable(w io.Writer, results []*worker.LookupResult) error {
	header := []string{"WORD", "POS", "DEFINITION"}
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		if res.Error != nil {
			rows = append(rows, []string{res.Word, "-", "error: " + res.Error.Error()})
			continue
		}
		rows = append(rows, []string{res.Word, res.Info.PartOfSpeech, res.Info.Definition})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		r[2] = runewidth.Truncate(r[2], batchColumnLimit, "...")
		for i, cell := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	writeLine := func(cells []string) {
		for i, cell := range cells {
			if i == len(cells)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	writeLine(header)
	for _, r := range rows {
		writeLine(r)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatDuration renders whole minutes and seconds, e.g. "1m 05s"
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	if minutes == 0 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %02ds", minutes, seconds)
}
