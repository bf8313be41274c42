package protocol

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/emtoggle/internal/emphasis"
	"github.com/dshills/emtoggle/internal/engine/buffer"
	"github.com/dshills/emtoggle/internal/engine/cursor"
)

func TestDecode(t *testing.T) {
	req, err := Decode([]byte(`{"id":"a-1","text":"one two","selections":[{"anchor":0,"head":3},{"anchor":5}],"delimiter":"asterisk"}`))
	require.NoError(t, err)
	assert.Equal(t, `"a-1"`, req.ID)
	assert.Equal(t, "one two", req.Text)
	assert.Equal(t, []cursor.Selection{cursor.NewSelection(0, 3), cursor.NewCursorSelection(5)}, req.Selections)
	assert.Equal(t, emphasis.Asterisk, req.Delimiter)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"not json", `{"text":`, ErrMalformed},
		{"not object", `[1,2]`, ErrMalformed},
		{"missing text", `{"selections":[]}`, ErrMalformed},
		{"missing selections", `{"text":"a"}`, ErrMalformed},
		{"bad anchor", `{"text":"a","selections":[{"anchor":"0"}]}`, ErrMalformed},
		{"bad head", `{"text":"a","selections":[{"anchor":0,"head":true}]}`, ErrMalformed},
		{"bad delimiter", `{"text":"a","selections":[],"delimiter":"~"}`, emphasis.ErrInvalidDelimiter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.line))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncode(t *testing.T) {
	out, err := Encode(Response{
		ID:         "7",
		Edits:      []buffer.Edit{buffer.NewInsert(0, "_"), buffer.NewDelete(3, 4)},
		Selections: []cursor.Selection{cursor.NewSelection(4, 1)},
		Text:       "_abc",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"edits": [{"from":0,"to":0,"insert":"_"},{"from":3,"to":4,"insert":""}],
		"selections": [{"anchor":4,"head":1}],
		"text": "_abc"
	}`, string(out))

	out, err = Encode(Response{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"edits":[],"selections":[],"text":""}`, string(out))

	out, err = Encode(Response{ID: `"x"`, Err: emphasis.ErrSelectionsOverlap})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x","error":"selections overlap"}`, string(out))
}

func TestServe(t *testing.T) {
	in := strings.Join([]string{
		`{"id":1,"text":"one two","selections":[{"anchor":0,"head":3},{"anchor":4,"head":7}]}`,
		``,
		`{"id":2,"text":"x _word_ y","selections":[{"anchor":5}],"delimiter":"*"}`,
		`not json`,
		`{"id":3,"text":"hello","selections":[{"anchor":0,"head":4},{"anchor":2,"head":5}]}`,
	}, "\n")

	var out bytes.Buffer
	srv := NewServer(emphasis.New(), WithDelimiter(func() emphasis.Delimiter { return emphasis.Asterisk }))
	require.NoError(t, srv.Serve(context.Background(), strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)

	first := gjson.Parse(lines[0])
	assert.Equal(t, int64(1), first.Get("id").Int())
	assert.Equal(t, "*one* *two*", first.Get("text").String())
	assert.Equal(t, int64(7), first.Get("selections.1.anchor").Int())
	assert.Len(t, first.Get("edits").Array(), 4)

	second := gjson.Parse(lines[1])
	assert.Equal(t, "x word y", second.Get("text").String())
	assert.Equal(t, int64(4), second.Get("selections.0.head").Int())

	assert.True(t, gjson.Get(lines[2], "error").Exists())
	assert.False(t, gjson.Get(lines[2], "id").Exists())

	third := gjson.Parse(lines[3])
	assert.Equal(t, int64(3), third.Get("id").Int())
	assert.Contains(t, third.Get("error").String(), "selections overlap")
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := NewServer(emphasis.New()).Serve(ctx, strings.NewReader(`{"text":"a","selections":[]}`+"\n"), &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestServeUnblocksOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	defer pw.Close()

	done := make(chan error, 1)
	go func() {
		done <- NewServer(emphasis.New()).Serve(ctx, pr, io.Discard)
	}()

	_, err := pw.Write([]byte(`{"text":"a","selections":[{"anchor":0}]}` + "\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve still blocked after cancel")
	}
}
