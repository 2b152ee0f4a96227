package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/textlens/internal/analyze"
	"github.com/ppiankov/textlens/internal/extract"
	"github.com/ppiankov/textlens/internal/model"
	"github.com/ppiankov/textlens/internal/render"
)

var (
	analyzeFile string
	analyzeURL  string
	analyzeHTML bool
	topWords    int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Count characters, words, sentences, paragraphs, spaces and punctuation",
	Long: `Analyze computes text metrics for a piece of text:
- Characters, words, sentences and paragraphs
- Whitespace and punctuation characters
- Most frequent words, reading and speaking time

Text is taken from the arguments, --file, --url or stdin, in that order.

Example:
  textlens analyze "Hello world. How are you?"
  textlens analyze --file essay.txt --top 10
  textlens analyze --url https://en.wikipedia.org/wiki/Laksa -o json
  cat page.html | textlens analyze --html`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "read text from file")
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "fetch text from a web page")
	analyzeCmd.Flags().BoolVar(&analyzeHTML, "html", false, "treat input as HTML and analyze its visible text")
	analyzeCmd.Flags().IntVar(&topWords, "top", 0, "number of most frequent words to show (default from config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("top") {
		cfg.Output.TopWords = topWords
	}

	text, source, err := readInput(cmd, cfg, args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Analyzing %d bytes from %s\n", len(text), source)
	}

	report := analyze.BuildReport(text, cfg.Output.TopWords)
	report.Source = source

	if format == render.FormatText {
		return render.Report(cmd.OutOrStdout(), &report)
	}
	return render.Encode(cmd.OutOrStdout(), format, report)
}

// readInput resolves the text to analyze and a label for where it came from
func readInput(cmd *cobra.Command, cfg *model.Config, args []string) (string, string, error) {
	switch {
	case len(args) > 0:
		return maybeHTML(strings.Join(args, " "), "arguments")

	case analyzeFile != "":
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return "", "", fmt.Errorf("read file: %w", err)
		}
		return maybeHTML(string(data), analyzeFile)

	case analyzeURL != "":
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HTTP.Timeout+5*time.Second)
		defer cancel()

		page, err := extract.NewFetcher(cfg.HTTP).Fetch(ctx, analyzeURL)
		if err != nil {
			return "", "", fmt.Errorf("fetch %s: %w", analyzeURL, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Fetched %s (%s)\n", page.FinalURL, page.ContentType)
		}
		return page.Text, page.FinalURL, nil

	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return maybeHTML(string(data), "stdin")
	}
}

func maybeHTML(text, source string) (string, string, error) {
	if !analyzeHTML {
		return text, source, nil
	}
	visible, err := extract.VisibleTextString(text)
	if err != nil {
		return "", "", err
	}
	return visible, source, nil
}
