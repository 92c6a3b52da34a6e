package counter

// Request holds the four independent counting toggles from the command line.
// The zero value is the "default mode": no flag set, which implies
// bytes+lines+words (never chars). Default mode is derived, not stored, so a
// Request never mutates after parsing.
type Request struct {
	Bytes bool
	Lines bool
	Words bool
	Chars bool
}

// DefaultMode reports whether no counting flag was set.
func (r Request) DefaultMode() bool {
	return !r.Bytes && !r.Lines && !r.Words && !r.Chars
}

// CountBytes reports whether the byte metric applies.
func (r Request) CountBytes() bool {
	return r.Bytes || r.DefaultMode()
}

// CountLines reports whether the line metric applies.
func (r Request) CountLines() bool {
	return r.Lines || r.DefaultMode()
}

// CountWords reports whether the word metric applies.
func (r Request) CountWords() bool {
	return r.Words || r.DefaultMode()
}

// CountChars reports whether the character metric applies.
// Chars is never implied by default mode; it has its own enable condition.
func (r Request) CountChars() bool {
	return r.Chars
}
