package emphasis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/emtoggle/internal/engine/buffer"
	"github.com/dshills/emtoggle/internal/engine/cursor"
)

func TestIsEmphasized(t *testing.T) {
	tests := []struct {
		name string
		text string
		sel  cursor.Selection
		want bool
	}{
		{"exact inner", "x _word_ y", cursor.NewSelection(3, 7), true},
		{"asterisk inner", "x *word* y", cursor.NewSelection(3, 7), true},
		{"backward inner", "x _word_ y", cursor.NewSelection(7, 3), true},
		{"one short", "x _word_ y", cursor.NewSelection(3, 6), true},
		{"with both delimiters", "x _word_ y", cursor.NewSelection(2, 8), false},
		{"plain", "x word y", cursor.NewSelection(2, 6), false},
		{"escaped", `a \_b_`, cursor.NewSelection(4, 5), false},
		{"at document start", "_word_ y", cursor.NewSelection(1, 5), true},
		{"neighbor run ignored", "_a_ b", cursor.NewSelection(4, 5), false},
		{"empty run", "a __ b", cursor.NewCursorSelection(3), true},
		{"bold is not italic", "**bold**", cursor.NewSelection(2, 6), false},
		{"lone underscore inside", "_foo_bar_", cursor.NewSelection(1, 8), true},
		{"lone asterisk inside", "*a*b*", cursor.NewSelection(1, 4), true},
		{"closer between two runs", "_a_b_ _c_d_", cursor.NewSelection(1, 4), true},
		{"second of two runs", "_a_ _b_", cursor.NewSelection(5, 6), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := buffer.NewBufferFromString(tt.text)
			assert.Equal(t, tt.want, IsEmphasized(doc, tt.sel))
		})
	}
}

func TestTighten(t *testing.T) {
	doc := buffer.NewBufferFromString("x _word_ y")

	got := Tighten(doc, cursor.NewSelection(3, 6))
	assert.Equal(t, cursor.NewSelection(3, 7), got)

	got = Tighten(doc, cursor.NewSelection(6, 3))
	assert.Equal(t, cursor.NewSelection(7, 3), got, "direction is kept")

	start := buffer.NewBufferFromString("_word_ y")
	assert.Equal(t, cursor.NewSelection(1, 5), Tighten(start, cursor.NewSelection(1, 4)))

	runs := buffer.NewBufferFromString("_a_b_ _c_d_")
	assert.Equal(t, cursor.NewSelection(7, 10), Tighten(runs, cursor.NewSelection(7, 10)))
	assert.Equal(t, cursor.NewSelection(1, 4), Tighten(runs, cursor.NewSelection(1, 3)))

	plain := buffer.NewBufferFromString("x word y")
	sel := cursor.NewSelection(2, 6)
	assert.Equal(t, sel, Tighten(plain, sel))
}

func TestTextOf(t *testing.T) {
	doc := buffer.NewBufferFromString("hello world")
	assert.Equal(t, "lo w", TextOf(doc, buffer.NewRange(4, 6), 1))
	assert.Equal(t, "hello", TextOf(doc, buffer.NewRange(0, 2), 3))
	assert.Equal(t, "world", TextOf(doc, buffer.NewRange(9, 11), 3))
	assert.Equal(t, "", TextOf(buffer.NewBufferFromString(""), buffer.NewRange(0, 0), 3))
}
