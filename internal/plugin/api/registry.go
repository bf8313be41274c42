package api

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	lua "github.com/yuin/gopher-lua"
)

// Version is reported as ks.version.
const Version = "1.0.0"

// Module is a Lua API module.
type Module interface {
	// Name returns the module name (e.g., "emphasis").
	Name() string

	// Register registers the module functions into the Lua state.
	// The module should register itself under _ks_<name> global.
	Register(L *lua.LState) error
}

// Registry manages API modules and their registration.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates a new API registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module to the registry.
func (r *Registry) Register(mod Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[mod.Name()]; exists {
		return errors.Newf("module %q already registered", mod.Name())
	}
	r.modules[mod.Name()] = mod
	return nil
}

// Get returns a module by name.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.modules[name]
	return mod, ok
}

// List returns all registered module names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// InjectAll registers all modules into the Lua state and makes them
// available through require("ks").
func (r *Registry) InjectAll(L *lua.LState) error {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range names {
		if err := r.modules[name].Register(L); err != nil {
			return errors.Wrapf(err, "failed to register module %q", name)
		}
	}
	installKSLoader(L, names)
	return nil
}

// installKSLoader moves the _ks_<name> globals into the ks module.
// Scripts use: local ks = require("ks")
func installKSLoader(L *lua.LState, names []string) {
	ks := L.NewTable()
	for _, name := range names {
		global := "_ks_" + name
		if val := L.GetGlobal(global); val != lua.LNil {
			L.SetField(ks, name, val)
			L.SetGlobal(global, lua.LNil)
		}
	}
	L.SetField(ks, "version", lua.LString(Version))

	L.PreloadModule("ks", func(L *lua.LState) int {
		L.Push(ks)
		return 1
	})
}
