// Package api provides the Lua modules exposed to emtoggle scripts.
//
// Modules register themselves under a _ks_<name> global; InjectAll then
// gathers them into the "ks" module:
//
//	local ks = require("ks")
//	local text, sels = ks.emphasis.toggle("one two", {{anchor = 0, head = 3}})
//	-- text == "_one_ two", sels[1].anchor == 1, sels[1].head == 4
//
// Offsets are 0-based byte offsets, the same units the Go API uses.
//
// # ks.emphasis
//
//   - toggle(text, selections [, delimiter]) -> text, selections
//     Selections are tables with anchor and head fields, or plain numbers
//     for cursors. The delimiter defaults to the configured one.
//   - is_emphasized(text, anchor [, head]) -> boolean
//   - delimiter() -> string
package api
