package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/emtoggle/internal/emphasis"
	"github.com/dshills/emtoggle/internal/engine/buffer"
	"github.com/dshills/emtoggle/internal/engine/cursor"
)

// EmphasisModule implements the ks.emphasis API module.
type EmphasisModule struct {
	toggler   *emphasis.Toggler
	delimiter func() emphasis.Delimiter
}

// NewEmphasisModule creates the module. delimiter is consulted on every
// call so that settings reloads are seen; nil means the default delimiter.
func NewEmphasisModule(t *emphasis.Toggler, delimiter func() emphasis.Delimiter) *EmphasisModule {
	if delimiter == nil {
		delimiter = func() emphasis.Delimiter { return emphasis.DefaultDelimiter }
	}
	return &EmphasisModule{toggler: t, delimiter: delimiter}
}

// Name returns the module name.
func (m *EmphasisModule) Name() string {
	return "emphasis"
}

// Register registers the module into the Lua state.
func (m *EmphasisModule) Register(L *lua.LState) error {
	mod := L.NewTable()
	L.SetField(mod, "toggle", L.NewFunction(m.toggle))
	L.SetField(mod, "is_emphasized", L.NewFunction(m.isEmphasized))
	L.SetField(mod, "delimiter", L.NewFunction(m.currentDelimiter))
	L.SetGlobal("_ks_emphasis", mod)
	return nil
}

// toggle(text, selections [, delimiter]) -> text, selections
func (m *EmphasisModule) toggle(L *lua.LState) int {
	text := L.CheckString(1)
	tbl := L.CheckTable(2)

	delim := m.delimiter()
	if name := L.OptString(3, ""); name != "" {
		d, err := emphasis.ParseDelimiter(name)
		if err != nil {
			L.ArgError(3, err.Error())
			return 0
		}
		delim = d
	}

	var sels []cursor.Selection
	for i := 1; i <= tbl.Len(); i++ {
		sel, ok := selectionFrom(tbl.RawGetInt(i))
		if !ok {
			L.ArgError(2, "selections must be numbers or {anchor, head} tables")
			return 0
		}
		sels = append(sels, sel)
	}

	doc := buffer.NewBufferFromString(text)
	batch, err := m.toggler.Toggle(doc, sels, delim)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	next, err := doc.ApplyEdits(batch.Edits)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}

	out := L.CreateTable(len(batch.Selections), 0)
	for _, sel := range batch.Selections {
		out.Append(selectionTable(L, sel))
	}
	L.Push(lua.LString(next.Text()))
	L.Push(out)
	return 2
}

// is_emphasized(text, anchor [, head]) -> boolean
func (m *EmphasisModule) isEmphasized(L *lua.LState) int {
	text := L.CheckString(1)
	anchor := L.CheckInt64(2)
	head := L.OptInt64(3, anchor)

	doc := buffer.NewBufferFromString(text)
	sel := cursor.NewSelection(anchor, head).Clamp(doc.Len())
	L.Push(lua.LBool(emphasis.IsEmphasized(doc, sel)))
	return 1
}

// delimiter() -> string
func (m *EmphasisModule) currentDelimiter(L *lua.LState) int {
	L.Push(lua.LString(m.delimiter().String()))
	return 1
}

func selectionFrom(v lua.LValue) (cursor.Selection, bool) {
	switch v := v.(type) {
	case lua.LNumber:
		return cursor.NewCursorSelection(buffer.ByteOffset(v)), true
	case *lua.LTable:
		anchor, ok := v.RawGetString("anchor").(lua.LNumber)
		if !ok {
			return cursor.Selection{}, false
		}
		head, ok := v.RawGetString("head").(lua.LNumber)
		if !ok {
			head = anchor
		}
		return cursor.NewSelection(buffer.ByteOffset(anchor), buffer.ByteOffset(head)), true
	}
	return cursor.Selection{}, false
}

func selectionTable(L *lua.LState, sel cursor.Selection) *lua.LTable {
	t := L.CreateTable(0, 2)
	t.RawSetString("anchor", lua.LNumber(sel.Anchor))
	t.RawSetString("head", lua.LNumber(sel.Head))
	return t
}
