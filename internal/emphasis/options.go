package emphasis

import "github.com/rs/zerolog"

// Option configures a Toggler.
type Option func(*Toggler)

// WithStructure sets the structure consulted when expanding cursors.
func WithStructure(s Structure) Option {
	return func(t *Toggler) {
		t.expander = NewExpander(s)
	}
}

// WithLogger sets the logger that receives one debug event per selection.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Toggler) {
		t.logger = logger
	}
}
