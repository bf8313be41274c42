// Package cursor provides selections and ordered selection sets.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head > anchor) or
// backward (head < anchor). Operations that move the edges of a selection
// keep that direction.
//
// Multi-Cursor Support:
//
// CursorSet keeps selections in the order the host supplied them. Unlike an
// interactive editor it never merges: a command that needs disjoint
// selections asks the set to check, and overlapping input is reported as
// an error.
//
//	cs := cursor.NewCursorSet(
//	    cursor.NewSelection(2, 6),
//	    cursor.NewCursorSelection(12),
//	)
//	if err := cs.CheckDisjoint(); err != nil {
//	    // precondition violated
//	}
//	for _, i := range cs.DocumentOrder() {
//	    sel := cs.Get(i)
//	    ...
//	}
//
// Thread Safety:
//
// Selection is an immutable value type. CursorSet is not thread-safe.
package cursor
