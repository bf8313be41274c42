package markup

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dshills/emtoggle/internal/emphasis"
	"github.com/dshills/emtoggle/internal/engine/buffer"
)

// Span is one italic run found in the parse tree.
type Span struct {
	Inner buffer.Range // delimiters excluded
	Delim emphasis.Delimiter
}

// Outer returns the range including both delimiters.
func (s Span) Outer() buffer.Range {
	return buffer.Range{Start: s.Inner.Start - 1, End: s.Inner.End + 1}
}

// Tree holds the italic runs of one document in document order.
type Tree struct {
	spans []Span
}

// Parse collects the italic runs of src.
func Parse(md goldmark.Markdown, src []byte) *Tree {
	root := md.Parser().Parse(text.NewReader(src))
	t := &Tree{}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		em, ok := n.(*ast.Emphasis)
		if !ok || em.Level != 1 {
			return ast.WalkContinue, nil
		}
		if sp, ok := spanOf(em, src); ok {
			t.spans = append(t.spans, sp)
		}
		return ast.WalkContinue, nil
	})
	return t
}

// Spans returns the runs in document order.
func (t *Tree) Spans() []Span {
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// Enclosing returns the smallest run whose inner range contains pos, ends
// included.
func (t *Tree) Enclosing(pos buffer.ByteOffset) (Span, bool) {
	var (
		best Span
		ok   bool
	)
	for _, sp := range t.spans {
		if !sp.Inner.ContainsInclusive(pos) {
			continue
		}
		if !ok || sp.Inner.Len() < best.Inner.Len() {
			best, ok = sp, true
		}
	}
	return best, ok
}

// spanOf derives the source range of an emphasis node from the text
// segments at its edges and checks that one delimiter sits on each side.
func spanOf(em *ast.Emphasis, src []byte) (Span, bool) {
	start, stop, ok := childBounds(em)
	if !ok || start < 1 || stop >= len(src) {
		return Span{}, false
	}
	open, closing := src[start-1], src[stop]
	if open != closing || !emphasis.Delimiter(open).Valid() {
		return Span{}, false
	}
	return Span{
		Inner: buffer.Range{Start: buffer.ByteOffset(start), End: buffer.ByteOffset(stop)},
		Delim: emphasis.Delimiter(open),
	}, true
}

func childBounds(n ast.Node) (int, int, bool) {
	first, last := n.FirstChild(), n.LastChild()
	if first == nil || last == nil {
		return 0, 0, false
	}
	start, _, ok := bounds(first)
	if !ok {
		return 0, 0, false
	}
	_, stop, ok := bounds(last)
	return start, stop, ok
}

// bounds reports the source extent of an inline node. Only text and nested
// emphasis are resolved; anything else (code spans, links) is unknown.
func bounds(n ast.Node) (int, int, bool) {
	switch v := n.(type) {
	case *ast.Text:
		return v.Segment.Start, v.Segment.Stop, true
	case *ast.Emphasis:
		start, stop, ok := childBounds(v)
		return start - v.Level, stop + v.Level, ok
	}
	return 0, 0, false
}
