package emphasis

import (
	"github.com/dshills/emtoggle/internal/engine/buffer"
	"github.com/dshills/emtoggle/internal/engine/cursor"
)

// Expander turns a cursor into the span a toggle should act on.
type Expander struct {
	structure Structure
}

// NewExpander returns an expander that consults s before falling back to
// word boundaries. A nil s behaves like NoStructure.
func NewExpander(s Structure) *Expander {
	if s == nil {
		s = NoStructure{}
	}
	return &Expander{structure: s}
}

// Nudge moves a cursor that sits between whitespace and a delimiter onto
// the delimiter side: one byte right when whitespace is before and a
// delimiter after, one byte left in the mirrored case.
func (e *Expander) Nudge(doc Document, pos buffer.ByteOffset) buffer.ByteOffset {
	before, okBefore := byteAt(doc, pos-1)
	after, okAfter := byteAt(doc, pos)
	if !okBefore || !okAfter {
		return pos
	}
	switch {
	case isSpaceByte(before) && isDelimiter(after):
		return pos + 1
	case isDelimiter(before) && isSpaceByte(after):
		return pos - 1
	}
	return pos
}

// Expand returns the selection for a cursor at pos: the inner range of the
// enclosing emphasis run if the structure finds one, else the word at pos,
// else the cursor itself.
func (e *Expander) Expand(doc Document, pos buffer.ByteOffset) cursor.Selection {
	n := doc.Len()
	if r, ok := e.structure.EnclosingEmphasis(doc, pos); ok {
		r = r.Clamp(n)
		if !(r.IsEmpty() && r.Start == pos) {
			return cursor.NewRangeSelection(r)
		}
	}
	if w, ok := doc.WordAt(pos); ok {
		return cursor.NewRangeSelection(w.Clamp(n))
	}
	return cursor.NewCursorSelection(pos)
}
