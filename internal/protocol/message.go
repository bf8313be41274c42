package protocol

import (
	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/emtoggle/internal/emphasis"
	"github.com/dshills/emtoggle/internal/engine/buffer"
	"github.com/dshills/emtoggle/internal/engine/cursor"
)

// ErrMalformed reports a request that is not valid JSON or misses a field.
var ErrMalformed = errors.New("malformed request")

// Request is one decoded toggle request.
type Request struct {
	// ID is the raw JSON of the id field, empty when absent.
	ID         string
	Text       string
	Selections []cursor.Selection
	// Delimiter is zero when the request does not name one.
	Delimiter emphasis.Delimiter
}

// Response is one toggle response. Err set means an error response.
type Response struct {
	ID         string
	Edits      []buffer.Edit
	Selections []cursor.Selection
	Text       string
	Err        error
}

// Decode parses one request line.
func Decode(data []byte) (Request, error) {
	if !gjson.ValidBytes(data) {
		return Request{}, errors.Wrap(ErrMalformed, "invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Request{}, errors.Wrap(ErrMalformed, "request is not an object")
	}

	var req Request
	if id := root.Get("id"); id.Exists() {
		req.ID = id.Raw
	}

	text := root.Get("text")
	if text.Type != gjson.String {
		return req, errors.Wrap(ErrMalformed, "text must be a string")
	}
	req.Text = text.Str

	sels := root.Get("selections")
	if !sels.IsArray() {
		return req, errors.Wrap(ErrMalformed, "selections must be an array")
	}
	for i, s := range sels.Array() {
		anchor, head := s.Get("anchor"), s.Get("head")
		if anchor.Type != gjson.Number {
			return req, errors.Wrapf(ErrMalformed, "selections[%d].anchor must be a number", i)
		}
		if !head.Exists() {
			head = anchor
		} else if head.Type != gjson.Number {
			return req, errors.Wrapf(ErrMalformed, "selections[%d].head must be a number", i)
		}
		req.Selections = append(req.Selections, cursor.NewSelection(anchor.Int(), head.Int()))
	}

	if d := root.Get("delimiter"); d.Exists() {
		delim, err := emphasis.ParseDelimiter(d.String())
		if err != nil {
			return req, err
		}
		req.Delimiter = delim
	}
	return req, nil
}

// Encode renders a response line without the trailing newline.
func Encode(resp Response) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	if resp.ID != "" {
		if out, err = sjson.SetRawBytes(out, "id", []byte(resp.ID)); err != nil {
			return nil, errors.Wrap(err, "encoding id")
		}
	}
	if resp.Err != nil {
		out, err = sjson.SetBytes(out, "error", resp.Err.Error())
		return out, errors.Wrap(err, "encoding error")
	}

	if out, err = sjson.SetRawBytes(out, "edits", []byte(`[]`)); err != nil {
		return nil, errors.Wrap(err, "encoding edits")
	}
	for _, e := range resp.Edits {
		out, err = sjson.SetBytes(out, "edits.-1", map[string]any{
			"from":   e.Range.Start,
			"to":     e.Range.End,
			"insert": e.NewText,
		})
		if err != nil {
			return nil, errors.Wrap(err, "encoding edits")
		}
	}

	if out, err = sjson.SetRawBytes(out, "selections", []byte(`[]`)); err != nil {
		return nil, errors.Wrap(err, "encoding selections")
	}
	for _, s := range resp.Selections {
		out, err = sjson.SetBytes(out, "selections.-1", map[string]any{
			"anchor": s.Anchor,
			"head":   s.Head,
		})
		if err != nil {
			return nil, errors.Wrap(err, "encoding selections")
		}
	}

	out, err = sjson.SetBytes(out, "text", resp.Text)
	return out, errors.Wrap(err, "encoding text")
}
