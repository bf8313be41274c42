package protocol

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/dshills/emtoggle/internal/emphasis"
	"github.com/dshills/emtoggle/internal/engine/buffer"
)

// MaxLineSize bounds one request line.
const MaxLineSize = 16 << 20

// Server answers toggle requests.
type Server struct {
	toggler   *emphasis.Toggler
	delimiter func() emphasis.Delimiter
	logger    zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithDelimiter sets the source of the default delimiter. It is consulted
// per request so settings reloads take effect.
func WithDelimiter(fn func() emphasis.Delimiter) Option {
	return func(s *Server) {
		s.delimiter = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a server around t.
func NewServer(t *emphasis.Toggler, opts ...Option) *Server {
	s := &Server{
		toggler:   t,
		delimiter: func() emphasis.Delimiter { return emphasis.DefaultDelimiter },
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serve reads requests from r and writes responses to w until r is
// exhausted or ctx is done. Bad requests get error responses; only I/O
// failures end the loop with an error. When r is an io.Closer it is closed
// once ctx is done, so a read blocked waiting for input returns.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	if c, ok := r.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stop()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		out, err := Encode(s.Handle(line))
		if err != nil {
			return err
		}
		if _, err := bw.Write(append(out, '\n')); err != nil {
			return errors.Wrap(err, "writing response")
		}
		if err := bw.Flush(); err != nil {
			return errors.Wrap(err, "writing response")
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	return errors.Wrap(scanner.Err(), "reading requests")
}

// Handle answers one request line.
func (s *Server) Handle(line []byte) Response {
	req, err := Decode(line)
	if err != nil {
		s.logger.Warn().Err(err).Msg("bad request")
		return Response{ID: req.ID, Err: err}
	}

	delim := req.Delimiter
	if delim == 0 {
		delim = s.delimiter()
	}

	doc := buffer.NewBufferFromString(req.Text)
	batch, err := s.toggler.Toggle(doc, req.Selections, delim)
	if err != nil {
		s.logger.Warn().Err(err).Str("id", req.ID).Msg("toggle failed")
		return Response{ID: req.ID, Err: err}
	}
	next, err := doc.ApplyEdits(batch.Edits)
	if err != nil {
		return Response{ID: req.ID, Err: err}
	}

	s.logger.Debug().
		Str("id", req.ID).
		Int("selections", len(req.Selections)).
		Int("edits", len(batch.Edits)).
		Msg("toggled")
	return Response{
		ID:         req.ID,
		Edits:      batch.Edits,
		Selections: batch.Selections,
		Text:       next.Text(),
	}
}
