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
)

var (
	dictionaryURL string
	noCache       bool
	insecureTLS   bool
	httpProxy     string
	httpsProxy    string
	lookupTimeout time.Duration
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up a single word in the dictionary",
	Long: `Lookup fetches the definition, part of speech, synonyms and antonyms of
one word. Fields the dictionary has no data for are shown as N/A, and an
unknown word is not an error.

Example:
  textlens lookup serendipity
  textlens lookup happy -o json
  textlens lookup colour --dictionary-url http://localhost:8080/api/v2/entries/en`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	addDictionaryFlags(lookupCmd)
}

// addDictionaryFlags registers the flags shared by commands that query the dictionary
func addDictionaryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dictionaryURL, "dictionary-url", "", "dictionary service base URL (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response cache (force fresh fetch)")
	cmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	cmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	cmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	cmd.Flags().DurationVar(&lookupTimeout, "timeout", 0, "per-request timeout (default from config)")
}

// applyDictionaryFlags copies explicitly set flags over the loaded config
func applyDictionaryFlags(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	if flags.Changed("dictionary-url") {
		cfg.Dictionary.BaseURL = dictionaryURL
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if flags.Changed("insecure") {
		cfg.HTTP.InsecureTLS = insecureTLS
	}
	if flags.Changed("http-proxy") {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if flags.Changed("https-proxy") {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}
	if flags.Changed("timeout") {
		cfg.HTTP.Timeout = lookupTimeout
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyDictionaryFlags(cmd, cfg)

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	client := lexicon.NewClient(cfg)
	word := args[0]

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Looking up %q at %s\n", word, cfg.Dictionary.BaseURL)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), lookupDeadline(cfg))
	defer cancel()

	info, lookupErr := client.Lookup(ctx, word)

	report := &model.LookupReport{
		Word:    word,
		Metrics: analyze.Analyze(word),
		Info:    info,
	}
	if lookupErr != nil {
		report.Error = lookupErr.Error()
	}

	if format == render.FormatText {
		err = render.Lookup(cmd.OutOrStdout(), report)
	} else {
		err = render.Encode(cmd.OutOrStdout(), format, report)
	}
	if err != nil {
		return err
	}

	if lookupErr != nil {
		return fmt.Errorf("lookup failed: %w", lookupErr)
	}
	return nil
}

// lookupDeadline bounds a whole lookup: every attempt plus the backoff between them
func lookupDeadline(cfg *model.Config) time.Duration {
	attempts := max(cfg.Dictionary.MaxAttempts, 1)
	backoff := time.Duration(0)
	for i := 1; i < attempts; i++ {
		backoff += cfg.Dictionary.RetryBackoff << (i - 1)
	}
	return time.Duration(attempts)*cfg.HTTP.Timeout + backoff + 5*time.Second
}
