package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Selection Tests

func TestSelectionDirection(t *testing.T) {
	fwd := NewSelection(2, 8)
	back := NewSelection(8, 2)

	assert.True(t, fwd.IsForward())
	assert.True(t, back.IsBackward())
	assert.Equal(t, Range{Start: 2, End: 8}, back.Range())
	assert.Equal(t, int64(6), back.Len())
	assert.True(t, fwd.SameRange(back))
	assert.False(t, fwd.Equals(back))
}

func TestSelectionWithRangeKeepsDirection(t *testing.T) {
	fwd := NewSelection(2, 8).WithRange(3, 7)
	assert.Equal(t, Selection{Anchor: 3, Head: 7}, fwd)

	back := NewSelection(8, 2).WithRange(3, 7)
	assert.Equal(t, Selection{Anchor: 7, Head: 3}, back)

	swapped := NewSelection(2, 8).WithRange(7, 3)
	assert.Equal(t, Selection{Anchor: 3, Head: 7}, swapped)
}

func TestSelectionClamp(t *testing.T) {
	assert.Equal(t, Selection{Anchor: 0, Head: 10}, NewSelection(-4, 30).Clamp(10))
}

func TestSelectionOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Selection
		want bool
	}{
		{"disjoint ranges", NewSelection(0, 3), NewSelection(4, 6), false},
		{"touching ranges", NewSelection(0, 3), NewSelection(3, 6), false},
		{"shared bytes", NewSelection(0, 4), NewSelection(3, 6), true},
		{"cursor inside", NewSelection(0, 4), NewCursorSelection(2), true},
		{"cursor on edge", NewSelection(0, 4), NewCursorSelection(4), false},
		{"same cursor", NewCursorSelection(5), NewCursorSelection(5), true},
		{"different cursors", NewCursorSelection(5), NewCursorSelection(6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestSelectionString(t *testing.T) {
	assert.Equal(t, "Cursor(3)", NewCursorSelection(3).String())
	assert.Equal(t, "Selection(1→4)", NewSelection(1, 4).String())
	assert.Equal(t, "Selection(4←1)", NewSelection(4, 1).String())
}

// CursorSet Tests

func TestCursorSetKeepsInputOrder(t *testing.T) {
	cs := NewCursorSet(NewSelection(10, 12), NewCursorSelection(2))

	require.Equal(t, 2, cs.Count())
	assert.True(t, cs.IsMulti())
	assert.Equal(t, NewSelection(10, 12), cs.Primary())
	assert.Equal(t, []int{1, 0}, cs.DocumentOrder())
}

func TestCursorSetAllIsCopy(t *testing.T) {
	cs := NewCursorSet(NewCursorSelection(1))
	all := cs.All()
	all[0] = NewCursorSelection(9)

	assert.Equal(t, NewCursorSelection(1), cs.Get(0))
}

func TestCursorSetCheckDisjoint(t *testing.T) {
	tests := []struct {
		name string
		sels []Selection
		ok   bool
	}{
		{"empty", nil, true},
		{"single", []Selection{NewSelection(0, 5)}, true},
		{"separate", []Selection{NewSelection(6, 9), NewSelection(0, 5)}, true},
		{"touching", []Selection{NewSelection(0, 5), NewSelection(5, 9)}, true},
		{"cursor at range start", []Selection{NewCursorSelection(5), NewSelection(5, 9)}, true},
		{"overlapping", []Selection{NewSelection(0, 5), NewSelection(4, 9)}, false},
		{"nested far apart", []Selection{NewSelection(0, 20), NewSelection(2, 3), NewSelection(10, 12)}, false},
		{"cursor inside range", []Selection{NewSelection(0, 5), NewCursorSelection(3)}, false},
		{"duplicate cursor", []Selection{NewCursorSelection(3), NewCursorSelection(3)}, false},
		{"backward ranges", []Selection{NewSelection(5, 0), NewSelection(9, 4)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCursorSet(tt.sels...).CheckDisjoint()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrOverlap)
			}
		})
	}
}

func TestCursorSetClamp(t *testing.T) {
	cs := NewCursorSet(NewSelection(-1, 3), NewSelection(8, 40))
	cs.Clamp(10)

	assert.Equal(t, []Range{{Start: 0, End: 3}, {Start: 8, End: 10}}, cs.Ranges())
}
