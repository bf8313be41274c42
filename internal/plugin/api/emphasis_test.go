package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/emtoggle/internal/emphasis"
	pluginlua "github.com/dshills/emtoggle/internal/plugin/lua"
)

func newScriptState(t *testing.T, delim emphasis.Delimiter) *pluginlua.State {
	t.Helper()
	s, err := pluginlua.NewState()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	r := NewRegistry()
	require.NoError(t, r.Register(NewEmphasisModule(emphasis.New(), func() emphasis.Delimiter { return delim })))
	require.NoError(t, r.InjectAll(s.LuaState()))
	return s
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	mod := NewEmphasisModule(emphasis.New(), nil)
	require.NoError(t, r.Register(mod))
	assert.Error(t, r.Register(mod))

	got, ok := r.Get("emphasis")
	require.True(t, ok)
	assert.Same(t, mod, got)
	assert.Equal(t, []string{"emphasis"}, r.List())
}

func TestKSModule(t *testing.T) {
	s := newScriptState(t, emphasis.Underscore)
	require.NoError(t, s.DoString(context.Background(), `
		local ks = require("ks")
		version = ks.version
		kind = type(ks.emphasis)
	`))
	assert.Equal(t, lua.LString(Version), s.GetGlobal("version"))
	assert.Equal(t, lua.LString("table"), s.GetGlobal("kind"))
	assert.Equal(t, lua.LNil, s.GetGlobal("_ks_emphasis"))
}

func TestToggleFromLua(t *testing.T) {
	s := newScriptState(t, emphasis.Underscore)
	require.NoError(t, s.DoString(context.Background(), `
		local ks = require("ks")
		text, sels = ks.emphasis.toggle("one two", {{anchor = 0, head = 3}, 5})
		a1, h1 = sels[1].anchor, sels[1].head
		c2 = sels[2].head
		star = ks.emphasis.toggle("word", {{anchor = 0, head = 4}}, "asterisk")
		back = ks.emphasis.toggle(text, sels)
	`))
	assert.Equal(t, lua.LString("_one_ _two_"), s.GetGlobal("text"))
	assert.Equal(t, lua.LNumber(1), s.GetGlobal("a1"))
	assert.Equal(t, lua.LNumber(4), s.GetGlobal("h1"))
	assert.Equal(t, lua.LNumber(8), s.GetGlobal("c2"))
	assert.Equal(t, lua.LString("*word*"), s.GetGlobal("star"))
	assert.Equal(t, lua.LString("one two"), s.GetGlobal("back"))
}

func TestIsEmphasizedFromLua(t *testing.T) {
	s := newScriptState(t, emphasis.Asterisk)
	require.NoError(t, s.DoString(context.Background(), `
		local ks = require("ks")
		yes = ks.emphasis.is_emphasized("x _word_ y", 3, 7)
		no = ks.emphasis.is_emphasized("x word y", 2, 6)
		d = ks.emphasis.delimiter()
	`))
	assert.Equal(t, lua.LTrue, s.GetGlobal("yes"))
	assert.Equal(t, lua.LFalse, s.GetGlobal("no"))
	assert.Equal(t, lua.LString("*"), s.GetGlobal("d"))
}

func TestToggleErrorsFromLua(t *testing.T) {
	s := newScriptState(t, emphasis.Underscore)
	ctx := context.Background()

	err := s.DoString(ctx, `require("ks").emphasis.toggle("hello", {{anchor = 0, head = 4}, {anchor = 2, head = 5}})`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selections overlap")

	err = s.DoString(ctx, `require("ks").emphasis.toggle("hello", {"x"})`)
	require.Error(t, err)

	err = s.DoString(ctx, `require("ks").emphasis.toggle("hello", {1}, "~")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid delimiter")
}
