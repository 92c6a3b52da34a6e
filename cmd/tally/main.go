package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/calebmills/tally/internal/app"
	"github.com/calebmills/tally/internal/counter"
	"github.com/calebmills/tally/internal/fetch"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	countBytes, _ := cmd.Flags().GetBool("bytes")
	countLines, _ := cmd.Flags().GetBool("lines")
	countWords, _ := cmd.Flags().GetBool("words")
	countChars, _ := cmd.Flags().GetBool("chars")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	// use positional arguments as sources
	var sources []string
	if len(args) == 0 {
		// no arguments provided - read stdin exactly once
		sources = append(sources, fetch.StdinName)
	} else {
		sources = args
	}

	// return constructed config; an all-false request is the default mode
	// (lines+words+bytes), derived inside counter.Request rather than set here
	return app.Config{
		Sources: sources,
		Request: counter.Request{
			Bytes: countBytes,
			Lines: countLines,
			Words: countWords,
			Chars: countChars,
		},
		Quiet: quiet,
		Debug: debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "tally [files...]",
	Short: "A CLI tool for counting bytes, lines, words, and characters",
	Long: `Tally counts bytes, lines, words, and characters in text input, one line of
counts per input. Inputs may be file paths or standard input; with no counting
flag set, lines, words, and bytes are reported.

Examples:
  tally file.txt
  tally -l -w notes.txt draft.txt
  cat content.txt | tally -m`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build config from flags and arguments
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// run the app!
		if err := app.Run(ctx, config, os.Stdout); err != nil {
			return fmt.Errorf("tally failed: %w", err)
		}

		return nil
	},
}

func init() {
	// counting flags are independent switches, not mutually exclusive
	rootCmd.Flags().BoolP("bytes", "c", false, "Count the number of bytes")
	rootCmd.Flags().BoolP("lines", "l", false, "Count the number of lines")
	rootCmd.Flags().BoolP("words", "w", false, "Count the number of words")
	rootCmd.Flags().BoolP("chars", "m", false, "Count the number of characters")

	// other flags
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress informational messages")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
