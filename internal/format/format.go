// Package format renders counting results as display lines for the tally CLI.
package format

import (
	"fmt"
	"strings"

	"github.com/calebmills/tally/internal/counter"
)

// Line renders one result as a tab-prefixed sequence of the requested counts
// in fixed order: lines, words, then chars or bytes. Chars and bytes are
// mutually exclusive in the output; chars wins when both are requested. A
// non-empty display name is appended after a single space. Line is a pure
// function: the same result and request always produce the same string.
func Line(res counter.Result, req counter.Request) string {
	var out strings.Builder

	if req.CountLines() {
		fmt.Fprintf(&out, "\t%d", res.LineCount)
	}
	if req.CountWords() {
		fmt.Fprintf(&out, "\t%d", res.WordCount)
	}
	if req.CountChars() {
		fmt.Fprintf(&out, "\t%d", res.CharCount)
	} else if req.CountBytes() {
		fmt.Fprintf(&out, "\t%d", res.ByteCount)
	}
	if res.Name != "" {
		fmt.Fprintf(&out, " %s", res.Name)
	}

	return out.String()
}
