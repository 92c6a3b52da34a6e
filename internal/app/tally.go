// Package app contains the core application logic for the tally CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/calebmills/tally/internal/counter"
	"github.com/calebmills/tally/internal/fetch"
	"github.com/calebmills/tally/internal/format"

	"golang.org/x/term"
)

// Config holds all configuration options for the tally application.
type Config struct {
	Sources []string        // file paths, or "-" for stdin
	Request counter.Request // which metrics were requested
	Quiet   bool            // suppress info messages
	Debug   bool
}

// Run executes the main tally application logic with the given configuration.
//
// Sources are processed strictly sequentially in the order given, each fully
// read into a reused buffer before counting, and one formatted line per
// source is written to out as soon as it is computed. The first open or read
// failure aborts the run; lines for earlier sources are already written.
//
// ctx allows for cancellation of the per-source loop between inputs.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources provided")
	}

	// the read buffer is cleared and reused across inputs to avoid
	// repeated allocation
	var buf bytes.Buffer

	for _, source := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		if source == fetch.StdinName && !cfg.Quiet && isTerminal(os.Stdin) {
			fmt.Fprintln(os.Stderr, "tally: reading from standard input...")
		}

		result, err := countSource(ctx, source, cfg.Request, &buf)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out, format.Line(result, cfg.Request)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

// countSource reads one source to completion into buf and counts it.
func countSource(ctx context.Context, source string, req counter.Request, buf *bytes.Buffer) (counter.Result, error) {
	reader, err := fetch.Open(ctx, source)
	if err != nil {
		return counter.Result{}, err
	}
	defer reader.Close()

	buf.Reset()
	if _, err := buf.ReadFrom(reader); err != nil {
		return counter.Result{}, fmt.Errorf("failed to read %q: %w", source, err)
	}

	slog.Debug("source read", "source", source, "bytes", buf.Len())

	result := counter.Count(buf.Bytes(), req)
	result.Name = fetch.DisplayName(source)
	return result, nil
}

// isTerminal helper function checks if f is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
