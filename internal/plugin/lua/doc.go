// Package lua runs user scripts against emtoggle in a sandboxed gopher-lua
// state.
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	if err := registry.InjectAll(state.LuaState()); err != nil {
//	    return err
//	}
//	if err := state.DoFile(ctx, "script.lua"); err != nil {
//	    return err
//	}
//
// The sandbox opens only the base, table, string, math and package
// libraries, removes the functions that load code from disk or strings,
// and limits require to preloaded modules. print writes to the configured
// output instead of stdout.
package lua
