package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calebmills/tally/internal/app"
	"github.com/calebmills/tally/internal/counter"
)

// writeFixture creates a file in a temp dir and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %q: %v", name, err)
	}
	return path
}

func TestRunSingleFile(t *testing.T) {
	path := writeFixture(t, "notes.txt", "foo bar\nbaz\n")

	var out bytes.Buffer
	cfg := app.Config{
		Sources: []string{path},
		Quiet:   true,
	}

	if err := app.Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("Run unexpected error: %v", err)
	}

	expected := "\t2\t3\t12 " + path + "\n"
	if out.String() != expected {
		t.Errorf("Run output = %q, want %q", out.String(), expected)
	}
}

func TestRunMultipleFilesPreserveOrder(t *testing.T) {
	first := writeFixture(t, "first.txt", "one two\n")
	second := writeFixture(t, "second.txt", "three\nfour\n")

	var out bytes.Buffer
	cfg := app.Config{
		Sources: []string{first, second},
		Quiet:   true,
	}

	if err := app.Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("Run unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Run produced %d lines, want 2: %q", len(lines), out.String())
	}

	// each file counted independently, no cross-file accumulation
	if want := "\t1\t2\t8 " + first; lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}
	if want := "\t2\t2\t11 " + second; lines[1] != want {
		t.Errorf("second line = %q, want %q", lines[1], want)
	}
}

func TestRunFlagSelection(t *testing.T) {
	path := writeFixture(t, "héllo.txt", "héllo")

	tests := []struct {
		name     string
		req      counter.Request
		expected string
	}{
		{"chars only", counter.Request{Chars: true}, "\t5"},
		{"bytes only", counter.Request{Bytes: true}, "\t6"},
		{"lines and words", counter.Request{Lines: true, Words: true}, "\t0\t1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := app.Config{
				Sources: []string{path},
				Request: tt.req,
				Quiet:   true,
			}

			if err := app.Run(context.Background(), cfg, &out); err != nil {
				t.Fatalf("Run unexpected error: %v", err)
			}

			expected := tt.expected + " " + path + "\n"
			if out.String() != expected {
				t.Errorf("Run output = %q, want %q", out.String(), expected)
			}
		})
	}
}

func TestRunMissingFileAborts(t *testing.T) {
	good := writeFixture(t, "good.txt", "hello\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	never := writeFixture(t, "never.txt", "unreached\n")

	var out bytes.Buffer
	cfg := app.Config{
		Sources: []string{good, missing, never},
		Quiet:   true,
	}

	err := app.Run(context.Background(), cfg, &out)
	if err == nil {
		t.Fatal("Run expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Run error = %q, want mention of missing file", err)
	}

	// best effort: the input before the failure is already written, the
	// input after it is not
	if !strings.Contains(out.String(), good) {
		t.Errorf("output %q missing line for %q", out.String(), good)
	}
	if strings.Contains(out.String(), never) {
		t.Errorf("output %q contains line for input after the failure", out.String())
	}
}

func TestRunNoSources(t *testing.T) {
	var out bytes.Buffer
	if err := app.Run(context.Background(), app.Config{Quiet: true}, &out); err == nil {
		t.Fatal("Run expected error for empty source list, got nil")
	}
}

func TestRunCancelledContext(t *testing.T) {
	path := writeFixture(t, "notes.txt", "hello\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cfg := app.Config{
		Sources: []string{path},
		Quiet:   true,
	}

	if err := app.Run(ctx, cfg, &out); err == nil {
		t.Fatal("Run expected error for cancelled context, got nil")
	}
	if out.Len() != 0 {
		t.Errorf("Run wrote %q after cancellation, want no output", out.String())
	}
}
