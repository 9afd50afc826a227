package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"trending/config"
	"trending/internal/adapter/analyzer"
	"trending/internal/adapter/console"
	"trending/internal/adapter/ranker"
	"trending/internal/adapter/render"
	"trending/internal/usecase"
)

func runTrending(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	logger, err := newLogger(cfg.Logging, errOut)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if writeConfig != "" {
		if err := cfg.Save(writeConfig); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(out, "Config written to: %s\n", writeConfig)
		return nil
	}

	reporter, err := render.NewReporter(cfg.Output.Format, out)
	if err != nil {
		return err
	}

	mode := resolveMode(cfg, in)

	// Prompts and retry notices share stdout with the user only in
	// interactive mode; otherwise stdout carries just the result.
	var prompts io.Writer = io.Discard
	notices := errOut
	if mode == usecase.ModeInteractive {
		prompts = out
		notices = out
	}

	// Create input source
	source := console.NewLineReader(in, notices, cfg.Session.MaxReadRetries, logger)

	// Create tokenizer and selector
	tokenizer := analyzer.NewTokenizer(cfg.Tokens.Marker, cfg.Tokens.DropEmpty, cfg.Tokens.Ignore)
	selector := ranker.NewHeapSelector(logger)

	sessionUC := usecase.NewSessionUseCase(source, tokenizer, selector, reporter, prompts, cfg.TopK.K, logger)

	var progress usecase.ProgressCallback
	if mode == usecase.ModeBatch && cfg.Session.ShowProgress && isTerminal(errOut) {
		bar := newLineCounter(errOut)
		defer bar.Finish()
		progress = func(lines int) {
			bar.Set(lines)
		}
	}

	result, err := sessionUC.Run(cmd.Context(), mode, progress)
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"session_id": result.SessionID,
		"lines":      result.Lines,
		"distinct":   result.Distinct,
		"reported":   len(result.Top),
	}).Info("session complete")

	return nil
}

// resolveMode picks batch or interactive reading. Explicit flags win; otherwise
// piped input is read in batch only when the config opts in.
func resolveMode(cfg *config.Config, in io.Reader) usecase.Mode {
	switch {
	case batch:
		return usecase.ModeBatch
	case interactive:
		return usecase.ModeInteractive
	case cfg.Session.AutoBatch && !isTerminal(in):
		return usecase.ModeBatch
	default:
		return usecase.ModeInteractive
	}
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// newLineCounter creates an open-ended spinner counting tweets read.
func newLineCounter(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]Reading tweets[reset]"),
		progressbar.OptionClearOnFinish(),
	)
}
