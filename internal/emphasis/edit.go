package emphasis

import (
	"strings"
	"unicode"

	"github.com/dshills/emtoggle/internal/engine/buffer"
)

// Italicized describes the edits that emphasize one span.
type Italicized struct {
	// Edits are in pre-edit coordinates: nested delimiter deletions first,
	// then the opening and closing insertions.
	Edits []buffer.Edit

	// Inner is the whitespace-trimmed span the new delimiters go around.
	Inner buffer.Range

	LeftPadding  buffer.ByteOffset
	RightPadding buffer.ByteOffset

	// Removed counts the nested runs whose delimiters were deleted.
	Removed int
}

// Delta returns the length change the edits cause.
func (it Italicized) Delta() buffer.ByteOffset {
	return 2 - 2*buffer.ByteOffset(it.Removed)
}

// MapCursor maps a pre-edit position inside or next to the span to its
// post-edit position, ignoring edits of other spans.
func (it Italicized) MapCursor(pos buffer.ByteOffset) buffer.ByteOffset {
	out := pos
	if pos >= it.Inner.Start {
		out++
	}
	if pos > it.Inner.End {
		out++
	}
	for _, e := range it.Edits {
		if e.IsDelete() && e.Range.Start < pos {
			out--
		}
	}
	return out
}

// Italicize returns the edits that emphasize r with d. Leading and trailing
// whitespace of r stays outside the delimiters, and every emphasis run
// inside the trimmed text loses its delimiters. A span that is all
// whitespace gets both delimiters at its end.
func Italicize(doc Document, r buffer.Range, d Delimiter) Italicized {
	r = r.Clamp(doc.Len())
	text := doc.Slice(r.Start, r.End)
	rest := strings.TrimLeftFunc(text, unicode.IsSpace)
	left := buffer.ByteOffset(len(text) - len(rest))
	core := strings.TrimRightFunc(rest, unicode.IsSpace)
	right := buffer.ByteOffset(len(rest) - len(core))

	it := Italicized{
		Inner:        buffer.Range{Start: r.Start + left, End: r.End - right},
		LeftPadding:  left,
		RightPadding: right,
	}
	for m := range MatchNested(core) {
		open := it.Inner.Start + buffer.ByteOffset(m.Index)
		closing := it.Inner.Start + buffer.ByteOffset(m.End()-1)
		it.Edits = append(it.Edits,
			buffer.NewDelete(open, open+1),
			buffer.NewDelete(closing, closing+1),
		)
		it.Removed++
	}
	it.Edits = append(it.Edits,
		buffer.NewInsert(it.Inner.Start, d.String()),
		buffer.NewInsert(it.Inner.End, d.String()),
	)
	return it
}

// Unitalicize returns the edits that remove the delimiters around inner,
// the exact inner range of an emphasis run.
func Unitalicize(inner buffer.Range) []buffer.Edit {
	return []buffer.Edit{
		buffer.NewDelete(inner.End, inner.End+1),
		buffer.NewDelete(inner.Start-1, inner.Start),
	}
}
