package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/textlens/internal/lexicon"
	"github.com/ppiankov/textlens/internal/model"
	"github.com/ppiankov/textlens/internal/render"
	"github.com/ppiankov/textlens/internal/session"
)

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive analysis session",
	Long: `Session reads lines from stdin and keeps live metrics for them.

In word mode each line replaces the text; in paragraph mode lines are
appended. Commands start with a colon:
  :word       switch to word mode (clears text)
  :para       switch to paragraph mode (clears text)
  :process    look the current word up in the dictionary
  :show       print the current state
  :clear      clear the text
  :quit       exit`,
	Args: cobra.NoArgs,
	RunE: runSessionCmd,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	addDictionaryFlags(sessionCmd)
}

func runSessionCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyDictionaryFlags(cmd, cfg)

	s := session.New(lexicon.NewClient(cfg))
	return runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), s, lookupDeadline(cfg))
}

const sessionHelp = "commands: :word :para :process :show :clear :quit"

// runSession drives s from line-oriented input until EOF or :quit
func runSession(ctx context.Context, in io.Reader, out io.Writer, s *session.Session, lookupTimeout time.Duration) error {
	fmt.Fprintf(out, "textlens session (%s mode). %s\n", s.Mode(), sessionHelp)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		if !strings.HasPrefix(line, ":") {
			text := line
			if s.Mode() == model.ModeParagraph && s.Text() != "" {
				text = s.Text() + "\n" + line
			}
			_ = render.Metrics(out, s.SetText(text))
			continue
		}

		switch command := strings.TrimSpace(line); command {
		case ":word", ":para":
			mode, _ := model.ParseMode(strings.TrimPrefix(command, ":"))
			s.SetMode(mode)
			fmt.Fprintf(out, "Switched to %s mode\n", mode)

		case ":process":
			lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
			info, err := s.ProcessWord(lookupCtx)
			cancel()
			switch {
			case errors.Is(err, session.ErrNotWordMode):
				fmt.Fprintln(out, "Dictionary lookup is only available in word mode (:word)")
				continue
			case err != nil:
				fmt.Fprintf(out, "Lookup failed: %v\n", err)
			case !info.Available():
				fmt.Fprintf(out, "No dictionary data for %q\n", s.Text())
			}
			_ = render.WordInfo(out, info)

		case ":show":
			printState(out, s.Snapshot())

		case ":clear":
			_ = render.Metrics(out, s.SetText(""))

		case ":quit", ":q":
			return nil

		default:
			fmt.Fprintf(out, "Unknown command %q; %s\n", command, sessionHelp)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// printState writes mode, text and metrics, plus word info in word mode
func printState(out io.Writer, state session.State) {
	fmt.Fprintf(out, "Mode: %s\n", state.Mode)
	fmt.Fprintf(out, "Text: %q\n", state.Text)
	fmt.Fprintln(out, "Metrics:")
	_ = render.Metrics(out, state.Metrics)
	if state.Mode == model.ModeWord {
		fmt.Fprintln(out, "Dictionary:")
		_ = render.WordInfo(out, state.WordInfo)
	}
}
