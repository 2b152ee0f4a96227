package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/textlens/internal/analyze"
	"github.com/ppiankov/textlens/internal/lexicon"
	"github.com/ppiankov/textlens/internal/model"
	"github.com/ppiankov/textlens/internal/render"
	"github.com/ppiankov/textlens/internal/worker"
)

var (
	batchFile    string
	concurrency  int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [word...]",
	Short: "Look up many words in parallel",
	Long: `Batch looks up several words concurrently:
- Read words from arguments or a file (one per line, # comments allowed)
- Query the dictionary with a bounded number of workers
- Print one result per distinct word (case-insensitive), in input order

Example:
  textlens batch happy sad angry
  textlens batch --file words.txt --concurrency 8
  textlens batch --file words.txt -o yaml`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "read words from file (one per line)")
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "batch-timeout", 5*time.Minute, "total timeout for the batch")
	addDictionaryFlags(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && batchFile == "" {
		return fmt.Errorf("no words given: pass words as arguments or use --file")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyDictionaryFlags(cmd, cfg)
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	batch := worker.NewBatchLookup(lexicon.NewClient(cfg), cfg.Concurrency.Workers)

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Looking up words with %d workers...\n", cfg.Concurrency.Workers)
	}

	var results []*worker.LookupResult
	if batchFile != "" {
		results, err = batch.LookupFile(ctx, batchFile, args...)
		if err != nil {
			return err
		}
	} else {
		results = batch.LookupWords(ctx, args)
	}

	failures := 0
	for _, res := range results {
		if res.Error != nil {
			failures++
		}
	}

	if format == render.FormatText {
		err = render.BatchTable(cmd.OutOrStdout(), results)
	} else {
		err = render.Encode(cmd.OutOrStdout(), format, lookupReports(results))
	}
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "\n  Total:     %d words\n", len(results))
		fmt.Fprintf(os.Stderr, "  Success:   %d\n", len(results)-failures)
		fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failures)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d lookups failed", failures, len(results))
	}
	return nil
}

// lookupReports converts batch results into their serializable form
func lookupReports(results []*worker.LookupResult) []model.LookupReport {
	reports := make([]model.LookupReport, len(results))
	for i, res := range results {
		reports[i] = model.LookupReport{
			Word:    res.Word,
			Metrics: analyze.Analyze(res.Word),
			Info:    res.Info,
		}
		if res.Error != nil {
			reports[i].Error = res.Error.Error()
		}
	}
	return reports
}
