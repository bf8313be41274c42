package emphasis

import "iter"

// Match is one delimiter-bounded run found in a string.
type Match struct {
	Index  int       // byte index of the opening delimiter
	Length int       // length in bytes, both delimiters included
	Delim  Delimiter // delimiter that bounds the run
}

// End returns the byte index just past the closing delimiter.
func (m Match) End() int { return m.Index + m.Length }

// IsEmpty reports whether the run is a bare doubled delimiter ("__").
func (m Match) IsEmpty() bool { return m.Length == 2 }

// Inner returns the byte bounds of the text between the delimiters.
func (m Match) Inner() (start, end int) { return m.Index + 1, m.End() - 1 }

// matchOrder is the priority of MatchEmphasis.
var matchOrder = [...]Delimiter{Asterisk, Underscore}

// nestedOrder is the alternative order used by MatchNested.
var nestedOrder = [...]Delimiter{Underscore, Asterisk}

// MatchEmphasis finds the first emphasis run in text. An asterisk run
// anywhere wins over an underscore run; when neither exists the leftmost
// empty doubled delimiter is reported. A run extends to the farthest valid
// closer on its line.
func MatchEmphasis(text string) (Match, bool) {
	for _, d := range matchOrder {
		for i := 0; i < len(text); i++ {
			if m, ok := runAt(text, i, d, true); ok {
				return m, true
			}
		}
	}
	for i := 0; i < len(text); i++ {
		for _, d := range matchOrder {
			if emptyAt(text, i, d) {
				return Match{Index: i, Length: 2, Delim: d}, true
			}
		}
	}
	return Match{}, false
}

// MatchNested yields the non-overlapping emphasis runs of text from left to
// right, each closed at its nearest closer. Scanning resumes after the end
// of each run.
func MatchNested(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for i := 0; i < len(text); {
			m, ok := nestedAt(text, i)
			if !ok {
				i++
				continue
			}
			if !yield(m) {
				return
			}
			i = m.End()
		}
	}
}

// Candidates yields every run that could bound an emphasized span in text:
// each valid opener paired with every valid closer after it on the same
// line, plus empty doubled delimiters. Runs may overlap. They are yielded
// by opener position, shorter first.
func Candidates(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for i := 0; i < len(text); i++ {
			for _, d := range matchOrder {
				if opens(text, i, byte(d)) {
					for j := i + 1; j < len(text) && !lineBreakAt(text, j); j++ {
						if closes(text, j, byte(d)) && !yield(Match{Index: i, Length: j - i + 1, Delim: d}) {
							return
						}
					}
				}
				if emptyAt(text, i, d) && !yield(Match{Index: i, Length: 2, Delim: d}) {
					return
				}
			}
		}
	}
}

func nestedAt(s string, i int) (Match, bool) {
	for _, d := range nestedOrder {
		if m, ok := runAt(s, i, d, false); ok {
			return m, true
		}
	}
	return Match{}, false
}

// runAt matches a run opened at i. It closes at the nearest valid closer
// on the same line, or at the farthest one when greedy is set.
func runAt(s string, i int, d Delimiter, greedy bool) (Match, bool) {
	if !opens(s, i, byte(d)) {
		return Match{}, false
	}
	end := -1
	for j := i + 1; j < len(s); j++ {
		if lineBreakAt(s, j) {
			break
		}
		if closes(s, j, byte(d)) {
			end = j
			if !greedy {
				break
			}
		}
	}
	if end < 0 {
		return Match{}, false
	}
	return Match{Index: i, Length: end - i + 1, Delim: d}, true
}

// opens: c, not preceded by a backslash or c, not followed by c.
func opens(s string, i int, c byte) bool {
	if s[i] != c {
		return false
	}
	if i > 0 && (s[i-1] == '\\' || s[i-1] == c) {
		return false
	}
	return i+1 >= len(s) || s[i+1] != c
}

// closes: c, not preceded by a backslash, not followed by c. A closing
// asterisk may additionally not follow another asterisk.
func closes(s string, i int, c byte) bool {
	if s[i] != c || i == 0 || s[i-1] == '\\' {
		return false
	}
	if i+1 < len(s) && s[i+1] == c {
		return false
	}
	return c != byte(Asterisk) || s[i-1] != c
}

// emptyAt matches exactly two c's not adjacent to a third.
func emptyAt(s string, i int, d Delimiter) bool {
	c := byte(d)
	if i+1 >= len(s) || s[i] != c || s[i+1] != c {
		return false
	}
	if i > 0 && s[i-1] == c {
		return false
	}
	return i+2 >= len(s) || s[i+2] != c
}

// lineBreakAt reports whether a line terminator starts at i: LF, CR, or
// the UTF-8 encodings of U+2028 and U+2029.
func lineBreakAt(s string, i int) bool {
	switch s[i] {
	case '\n', '\r':
		return true
	case 0xE2:
		return i+2 < len(s) && s[i+1] == 0x80 && (s[i+2] == 0xA8 || s[i+2] == 0xA9)
	}
	return false
}
