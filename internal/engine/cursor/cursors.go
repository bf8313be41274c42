package cursor

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrOverlap is returned by CheckDisjoint when two selections share text.
var ErrOverlap = errors.New("selections overlap")

// CursorSet holds the selections of one multi-cursor command in the order
// the host supplied them. The first selection is the primary one.
type CursorSet struct {
	selections []Selection
}

// NewCursorSet creates a cursor set from the given selections.
func NewCursorSet(selections ...Selection) *CursorSet {
	cs := &CursorSet{
		selections: make([]Selection, len(selections)),
	}
	copy(cs.selections, selections)
	return cs
}

// Primary returns the primary (first) selection.
func (cs *CursorSet) Primary() Selection {
	if len(cs.selections) == 0 {
		return Selection{}
	}
	return cs.selections[0]
}

// All returns a copy of all selections.
func (cs *CursorSet) All() []Selection {
	result := make([]Selection, len(cs.selections))
	copy(result, cs.selections)
	return result
}

// Count returns the number of selections.
func (cs *CursorSet) Count() int {
	return len(cs.selections)
}

// IsMulti returns true if there are multiple selections.
func (cs *CursorSet) IsMulti() bool {
	return len(cs.selections) > 1
}

// Get returns the selection at index.
func (cs *CursorSet) Get(index int) Selection {
	return cs.selections[index]
}

// Set replaces the selection at index.
func (cs *CursorSet) Set(index int, sel Selection) {
	cs.selections[index] = sel
}

// Clamp clamps all selections to [0, maxOffset].
func (cs *CursorSet) Clamp(maxOffset ByteOffset) {
	for i := range cs.selections {
		cs.selections[i] = cs.selections[i].Clamp(maxOffset)
	}
}

// DocumentOrder returns selection indices sorted by start offset, then
// end offset. Selections with equal ranges keep their input order.
func (cs *CursorSet) DocumentOrder() []int {
	order := make([]int, len(cs.selections))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := cs.selections[order[a]], cs.selections[order[b]]
		if sa.Start() != sb.Start() {
			return sa.Start() < sb.Start()
		}
		return sa.End() < sb.End()
	})
	return order
}

// CheckDisjoint returns ErrOverlap, naming the offending pair, if any two
// selections overlap. A cursor on the edge of a range does not overlap it.
func (cs *CursorSet) CheckDisjoint() error {
	var (
		maxEnd  ByteOffset = -1
		widest  Selection
		lastPos ByteOffset = -1
		last    Selection
	)
	for _, i := range cs.DocumentOrder() {
		sel := cs.selections[i]
		if sel.Start() < maxEnd {
			return errors.Wrapf(ErrOverlap, "%s and %s", widest, sel)
		}
		if sel.IsEmpty() {
			if sel.Head == lastPos {
				return errors.Wrapf(ErrOverlap, "%s and %s", last, sel)
			}
			lastPos, last = sel.Head, sel
			continue
		}
		maxEnd, widest = sel.End(), sel
	}
	return nil
}

// Ranges returns the ranges of all selections, in set order.
func (cs *CursorSet) Ranges() []Range {
	ranges := make([]Range, len(cs.selections))
	for i, sel := range cs.selections {
		ranges[i] = sel.Range()
	}
	return ranges
}
