// Package fetch provides input opening for the tally CLI;
// it handles named files and standard input behind a single entry point.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StdinName is the source sentinel for standard input. Results for stdin
// carry no display name.
const StdinName = "-"

// File size limit to prevent memory overload, since each input is buffered
// fully before counting.
// TODO: make this configurable via a command-line flag
const MaxInputSizeBytes = 50 * 1024 * 1024 // 50MB

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// Open returns an io.ReadCloser for the given source. The sentinel "-" reads
// from standard input; everything else is treated as a local file path.
//
// ctx is accepted for API consistency with other blocking operations but local
// opens do not consult it.
func Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if source == StdinName {
		// wrap stdin with a size limit to prevent memory overload
		return &limitedReadCloser{
			ReadCloser: os.Stdin,
			N:          MaxInputSizeBytes,
			source:     "stdin",
		}, nil
	}
	return openFile(source)
}

// DisplayName returns the name to show after the counts for a source; the
// empty string means the source is standard input and no name is shown.
func DisplayName(source string) string {
	if source == StdinName {
		return ""
	}
	return source
}

// openFile opens a local file for reading with better error messages.
func openFile(path string) (io.ReadCloser, error) {
	// check if file exists and get size
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	// check file size before opening to prevent memory overload
	if fileInfo.Size() > MaxInputSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxInputSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return file, nil
}
