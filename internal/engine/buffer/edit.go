package buffer

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
)

// Edit represents a text edit operation.
// It specifies a range to replace and the new text. Within a batch every
// Range is expressed in the coordinates of the document before any edit of
// that batch is applied.
type Edit struct {
	Range   Range  // The range to replace
	NewText string // The replacement text
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(offset ByteOffset, text string) Edit {
	return Edit{
		Range:   Range{Start: offset, End: offset},
		NewText: text,
	}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end ByteOffset) Edit {
	return Edit{
		Range:   Range{Start: start, End: end},
		NewText: "",
	}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// Delta returns the change in buffer length caused by this edit.
func (e Edit) Delta() ByteOffset {
	return ByteOffset(len(e.NewText)) - e.Range.Len()
}

// TotalDelta returns the net change in length caused by a batch of edits.
func TotalDelta(edits []Edit) ByteOffset {
	var d ByteOffset
	for _, e := range edits {
		d += e.Delta()
	}
	return d
}

// ValidateEdits checks that every edit lies within [0, length] and that no
// two edits touch the same bytes of the original document. Insertions
// never overlap anything, including each other.
func ValidateEdits(edits []Edit, length ByteOffset) error {
	for i, e := range edits {
		if !e.Range.IsValid() || e.Range.Start < 0 || e.Range.End > length {
			return errors.Wrapf(ErrRangeInvalid, "edit %d %s", i, e)
		}
	}

	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := edits[order[a]].Range, edits[order[b]].Range
		if ra.Start != rb.Start {
			return ra.Start < rb.Start
		}
		return ra.End < rb.End
	})

	// maxEnd is the furthest end of any deletion or replacement seen so far
	var maxEnd ByteOffset
	var last Edit
	for k, i := range order {
		e := edits[i]
		if k > 0 && e.Range.Start < maxEnd {
			return errors.Wrapf(ErrEditsOverlap, "%s and %s", last, e)
		}
		if !e.Range.IsEmpty() && e.Range.End > maxEnd {
			maxEnd = e.Range.End
			last = e
		}
	}
	return nil
}

// applyOrder returns edit indices in the order they must be applied so that
// every edit still sees its original coordinates: highest offset first.
// At equal starts a deletion goes before an insertion, so the insertion is
// not swallowed by it, and later-listed insertions go first so that the
// batch order survives in the text.
func applyOrder(edits []Edit) []int {
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := edits[order[a]], edits[order[b]]
		if ea.Range.Start != eb.Range.Start {
			return ea.Range.Start > eb.Range.Start
		}
		if ea.Range.End != eb.Range.End {
			return ea.Range.End > eb.Range.End
		}
		return order[a] > order[b]
	})
	return order
}
