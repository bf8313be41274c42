// Package protocol serves toggle requests as JSON lines, one request per
// input line and one response per output line.
//
// Request:
//
//	{"id": 1, "text": "one two", "selections": [{"anchor": 0, "head": 3}], "delimiter": "_"}
//
// delimiter is optional and defaults to the configured one. id may be any
// JSON value and is echoed back unchanged.
//
// Response:
//
//	{"id": 1, "edits": [{"from": 0, "to": 0, "insert": "_"}, ...],
//	 "selections": [{"anchor": 1, "head": 4}], "text": "_one_ two"}
//
// or, on failure, {"id": 1, "error": "..."}. Edit offsets refer to the
// request text; selections refer to the returned text.
package protocol
