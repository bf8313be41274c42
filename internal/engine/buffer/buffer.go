package buffer

import (
	"io"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/rivo/uniseg"
)

// Buffer is an immutable document snapshot.
// All positions are byte offsets into the text.
type Buffer struct {
	text       string
	revisionID RevisionID
}

// NewBufferFromString creates a buffer with the given content.
func NewBufferFromString(s string) *Buffer {
	return &Buffer{
		text:       s,
		revisionID: NewRevisionID(),
	}
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading buffer content")
	}
	return NewBufferFromString(string(data)), nil
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return b.text
}

// Len returns the total length of the buffer in bytes.
func (b *Buffer) Len() ByteOffset {
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// RevisionID returns the revision of this snapshot.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// Slice returns the text in [from, to). Both ends are clamped to the
// buffer, so out-of-range offsets never fail.
func (b *Buffer) Slice(from, to ByteOffset) string {
	r := NewRange(from, to).Clamp(b.Len())
	return b.text[r.Start:r.End]
}

// TextOf returns the text of r widened by radius on each side.
func (b *Buffer) TextOf(r Range, radius ByteOffset) string {
	g := r.Grow(radius, b.Len())
	return b.text[g.Start:g.End]
}

// ByteAt returns the byte at the given offset.
func (b *Buffer) ByteAt(offset ByteOffset) (byte, bool) {
	if offset < 0 || offset >= b.Len() {
		return 0, false
	}
	return b.text[offset], true
}

// WordAt returns the word that contains or touches pos.
//
// Words are found with Unicode word segmentation and must contain at
// least one letter or digit. Emphasis delimiters ('_' and '*') on the
// edges of a segment are not part of the word, even though segmentation
// joins underscores to the letters around them.
func (b *Buffer) WordAt(pos ByteOffset) (Range, bool) {
	if pos < 0 || pos > b.Len() {
		return Range{}, false
	}

	lineStart := ByteOffset(strings.LastIndexByte(b.text[:pos], '\n') + 1)
	lineEnd := b.Len()
	if i := strings.IndexByte(b.text[pos:], '\n'); i >= 0 {
		lineEnd = pos + ByteOffset(i)
	}

	var found Range
	ok := false
	line := b.text[lineStart:lineEnd]
	start := lineStart
	state := -1
	for len(line) > 0 {
		var seg string
		seg, line, state = uniseg.FirstWordInString(line, state)
		end := start + ByteOffset(len(seg))
		if start > pos {
			break
		}
		if pos <= end && isWord(seg) {
			lead := len(seg) - len(strings.TrimLeft(seg, "_*"))
			trail := len(seg) - len(strings.TrimRight(seg, "_*"))
			found = Range{Start: start + ByteOffset(lead), End: end - ByteOffset(trail)}
			ok = true
			// a word that strictly contains pos wins over one that ends at it
			if pos < end {
				break
			}
		}
		start = end
	}
	return found, ok
}

func isWord(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Write Operations

// ApplyEdits applies a batch of edits atomically and returns the resulting
// snapshot. Every edit is expressed in the coordinates of b. Either all
// edits apply or none do; b itself is never modified.
func (b *Buffer) ApplyEdits(edits []Edit) (*Buffer, error) {
	if err := ValidateEdits(edits, b.Len()); err != nil {
		return nil, err
	}
	if len(edits) == 0 {
		return b, nil
	}

	order := applyOrder(edits)
	var sb strings.Builder
	sb.Grow(len(b.text) + int(TotalDelta(edits)))
	var at ByteOffset
	// applyOrder is back to front; walk it in reverse to build front to back
	for k := len(order) - 1; k >= 0; k-- {
		e := edits[order[k]]
		sb.WriteString(b.text[at:e.Range.Start])
		sb.WriteString(e.NewText)
		at = e.Range.End
	}
	sb.WriteString(b.text[at:])

	return &Buffer{
		text:       sb.String(),
		revisionID: NewRevisionID(),
	}, nil
}
