package emphasis

import (
	"strings"
	"unicode"

	"github.com/dshills/emtoggle/internal/engine/buffer"
	"github.com/dshills/emtoggle/internal/engine/cursor"
)

const (
	// ContextRadius is how many bytes around a selection are searched for
	// the delimiters of an enclosing run.
	ContextRadius buffer.ByteOffset = 3

	// LengthTolerance is the largest allowed difference between the trimmed
	// selection length and the inner length of the run it sits in.
	LengthTolerance = 1
)

// IsEmphasized reports whether sel addresses the contents of an emphasis
// run: within ContextRadius bytes around it there is a run whose
// delimiters enclose the whitespace-trimmed selection and whose inner
// length is within LengthTolerance of it.
func IsEmphasized(doc Document, sel cursor.Selection) bool {
	_, ok := locate(doc, sel.Range())
	return ok
}

// Tighten shrinks or grows sel to exactly the inner range of the run that
// makes it emphasized, keeping its direction. A selection that is not
// emphasized is returned unchanged.
func Tighten(doc Document, sel cursor.Selection) cursor.Selection {
	inner, ok := locate(doc, sel.Range())
	if !ok {
		return sel
	}
	return sel.WithRange(inner.Start, inner.End)
}

// locate finds the run that makes r emphasized and returns its inner range.
// The first match of the context window is tried before the other
// candidates.
func locate(doc Document, r buffer.Range) (buffer.Range, bool) {
	r = r.Clamp(doc.Len())
	raw := doc.Slice(r.Start, r.End)
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
	lead := buffer.ByteOffset(len(raw) - len(trimmed))
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	core := buffer.Range{Start: r.Start + lead, End: r.Start + lead + buffer.ByteOffset(len(trimmed))}

	text := TextOf(doc, r, ContextRadius)
	ws := max(r.Start-ContextRadius, 0)
	fits := func(m Match) (buffer.Range, bool) {
		from := ws + buffer.ByteOffset(m.Index)
		to := ws + buffer.ByteOffset(m.End())
		if from > core.Start || to < core.End {
			return buffer.Range{}, false
		}
		if abs(len(trimmed)-(m.Length-2)) > LengthTolerance {
			return buffer.Range{}, false
		}
		return buffer.Range{Start: from + 1, End: to - 1}, true
	}

	if m, ok := MatchEmphasis(text); ok {
		if inner, ok := fits(m); ok {
			return inner, true
		}
	}
	for m := range Candidates(text) {
		if inner, ok := fits(m); ok {
			return inner, true
		}
	}
	return buffer.Range{}, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
