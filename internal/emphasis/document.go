package emphasis

import (
	"unicode"

	"github.com/dshills/emtoggle/internal/engine/buffer"
)

// Document is the read-only view of the text the toggler works on.
// *buffer.Buffer satisfies it.
type Document interface {
	// Len returns the document length in bytes.
	Len() buffer.ByteOffset

	// Slice returns the text in [from, to), clamped to the document.
	Slice(from, to buffer.ByteOffset) string

	// WordAt returns the word touching pos, if any.
	WordAt(pos buffer.ByteOffset) (buffer.Range, bool)
}

// Structure locates emphasis using a parsed view of the document.
// Implementations report the inner range (delimiters excluded) of the
// smallest emphasis run whose inner range contains pos, ends included.
type Structure interface {
	EnclosingEmphasis(doc Document, pos buffer.ByteOffset) (buffer.Range, bool)
}

// NoStructure is a Structure that never finds anything, leaving cursor
// expansion to word boundaries.
type NoStructure struct{}

// EnclosingEmphasis always reports false.
func (NoStructure) EnclosingEmphasis(Document, buffer.ByteOffset) (buffer.Range, bool) {
	return buffer.Range{}, false
}

// TextOf returns the text of r widened by radius bytes on each side,
// clamped to the document.
func TextOf(doc Document, r buffer.Range, radius buffer.ByteOffset) string {
	w := r.Grow(radius, doc.Len())
	return doc.Slice(w.Start, w.End)
}

// byteAt returns the byte at pos, or false outside the document.
func byteAt(doc Document, pos buffer.ByteOffset) (byte, bool) {
	if pos < 0 || pos >= doc.Len() {
		return 0, false
	}
	s := doc.Slice(pos, pos+1)
	if s == "" {
		return 0, false
	}
	return s[0], true
}

func isSpaceByte(b byte) bool {
	return b < 0x80 && unicode.IsSpace(rune(b))
}
