package api

import (
	"errors"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

// mockModule is a simple test module.
type mockModule struct {
	name       string
	err        error
	registered bool
}

func (m *mockModule) Name() string { return m.name }
func (m *mockModule) Register(L *lua.LState) error {
	if m.err != nil {
		return m.err
	}
	m.registered = true
	mod := L.NewTable()
	L.SetField(mod, "test", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString("mock"))
		return 1
	}))
	L.SetGlobal("_ks_"+m.name, mod)
	return nil
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	mod := &mockModule{name: "test"}
	if err := r.Register(mod); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	got, ok := r.Get("test")
	if !ok || got != mod {
		t.Error("Get returned wrong module")
	}
	if _, ok := r.Get("nonexistent"); ok {
		t.Error("Get for nonexistent should return ok = false")
	}
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&mockModule{name: "mod2"})
	_ = r.Register(&mockModule{name: "mod1"})

	names := r.List()
	if len(names) != 2 || names[0] != "mod1" || names[1] != "mod2" {
		t.Errorf("List = %v, want [mod1 mod2]", names)
	}
}

func TestRegistryInjectAll(t *testing.T) {
	r := NewRegistry()
	mod1 := &mockModule{name: "test1"}
	mod2 := &mockModule{name: "test2"}
	_ = r.Register(mod1)
	_ = r.Register(mod2)

	L := lua.NewState()
	defer L.Close()

	if err := r.InjectAll(L); err != nil {
		t.Fatalf("InjectAll error = %v", err)
	}
	if !mod1.registered || !mod2.registered {
		t.Error("all modules should be registered")
	}

	if err := L.DoString(`result = require("ks").test2.test()`); err != nil {
		t.Fatalf("DoString error = %v", err)
	}
	if got := L.GetGlobal("result"); got != lua.LString("mock") {
		t.Errorf("result = %v, want mock", got)
	}
	if L.GetGlobal("_ks_test1") != lua.LNil {
		t.Error("_ks_test1 global should be removed")
	}
}

func TestRegistryInjectAllError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	_ = r.Register(&mockModule{name: "bad", err: boom})

	L := lua.NewState()
	defer L.Close()

	err := r.InjectAll(L)
	if !errors.Is(err, boom) {
		t.Errorf("InjectAll error = %v, want boom", err)
	}
}
