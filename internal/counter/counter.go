// Package counter provides the counting core for the tally CLI tool.
//
// This package implements the single-pass counting algorithm over a raw byte
// buffer: total bytes, line-feed occurrences, maximal runs of non-whitespace
// bytes (words), and decoded UTF-8 scalar values (characters). Which metrics
// are computed is driven by a Request; the chars metric degrades to the byte
// length when the buffer is not valid UTF-8, so binary input never fails.
//
// Usage Example:
//
//	result := counter.Count([]byte("foo bar\n"), counter.Request{})
//	// default mode: result.LineCount=1, result.WordCount=2, result.ByteCount=8
package counter

import (
	"log/slog"
	"unicode/utf8"
)

// Result holds the counts computed for a single input.
// It is created once per input and never modified afterward; Name carries the
// display name of the originating source (empty for standard input).
type Result struct {
	ByteCount uint64
	LineCount uint64
	WordCount uint64
	CharCount uint64
	Name      string
}

// wordState tracks the word-boundary state machine. An explicit two-valued
// enumeration instead of a boolean; the polarity of the boolean form is a
// frequent source of off-by-one bugs at input boundaries.
type wordState int

const (
	// betweenWords is the initial state; whitespace keeps the machine here.
	betweenWords wordState = iota
	// inWord means the current byte extends a run of non-whitespace bytes.
	inWord
)

// Count computes the metrics requested by req over data in a single pass and
// returns a Result. A word is a maximal run of non-whitespace bytes; the count
// increments on each whitespace-to-non-whitespace transition, so leading or
// trailing whitespace never contributes a word. Empty input yields all zeros.
//
// Count never fails: invalid UTF-8 only affects the chars metric, which falls
// back to the byte length of data.
func Count(data []byte, req Request) Result {
	var res Result

	// hoist the flag checks out of the per-byte loop
	countBytes := req.CountBytes()
	countLines := req.CountLines()
	countWords := req.CountWords()

	state := betweenWords
	for _, b := range data {
		if countBytes {
			res.ByteCount++
		}
		if countLines && b == '\n' {
			res.LineCount++
		}
		if countWords {
			if isASCIISpace(b) {
				state = betweenWords
			} else if state == betweenWords {
				res.WordCount++
				state = inWord
			}
		}
	}

	if req.CountChars() {
		res.CharCount = countChars(data)
	}

	slog.Debug("counts computed",
		"inputLength", len(data),
		"lines", res.LineCount,
		"words", res.WordCount,
		"chars", res.CharCount)
	return res
}

// countChars returns the number of UTF-8 scalar values in data, or the byte
// length when data is not valid UTF-8. The fallback uses len(data) directly
// rather than the gated byte counter, so it holds even when bytes were not
// requested.
func countChars(data []byte) uint64 {
	if !utf8.Valid(data) {
		slog.Debug("invalid UTF-8, falling back to byte length", "inputLength", len(data))
		return uint64(len(data))
	}
	return uint64(utf8.RuneCount(data))
}

// isASCIISpace matches the ASCII whitespace set used for word boundaries:
// space, horizontal tab, line feed, vertical tab, form feed, carriage return.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
