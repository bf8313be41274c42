package markup

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
)

// DefaultTTL is how long a parsed tree stays cached.
const DefaultTTL = time.Minute

// Option configures a Resolver.
type Option func(*Resolver)

// WithTTL sets how long parsed trees are cached.
func WithTTL(ttl time.Duration) Option {
	return func(r *Resolver) {
		r.ttl = ttl
	}
}

// WithMarkdown sets the goldmark instance used for parsing, for hosts that
// enable extensions.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(r *Resolver) {
		r.md = md
	}
}

// WithLogger sets the logger for parse events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}
