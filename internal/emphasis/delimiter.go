package emphasis

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Delimiter is the character that bounds an emphasized run.
type Delimiter byte

// Supported delimiters.
const (
	Underscore Delimiter = '_'
	Asterisk   Delimiter = '*'
)

// DefaultDelimiter is used when nothing is configured.
const DefaultDelimiter = Underscore

// ParseDelimiter accepts "underscore", "asterisk", "_" or "*", ignoring
// case and surrounding space.
func ParseDelimiter(s string) (Delimiter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "_", "underscore":
		return Underscore, nil
	case "*", "asterisk":
		return Asterisk, nil
	}
	return 0, errors.Wrapf(ErrInvalidDelimiter, "%q", s)
}

// Valid reports whether d is one of the supported delimiters.
func (d Delimiter) Valid() bool {
	return d == Underscore || d == Asterisk
}

// String returns the delimiter character itself.
func (d Delimiter) String() string {
	return string([]byte{byte(d)})
}

// Name returns the settings name of the delimiter.
func (d Delimiter) Name() string {
	switch d {
	case Underscore:
		return "underscore"
	case Asterisk:
		return "asterisk"
	default:
		return "unknown"
	}
}

// MarshalText encodes the delimiter by name.
func (d Delimiter) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.Wrapf(ErrInvalidDelimiter, "%q", byte(d))
	}
	return []byte(d.Name()), nil
}

// UnmarshalText accepts any spelling ParseDelimiter accepts.
func (d *Delimiter) UnmarshalText(text []byte) error {
	parsed, err := ParseDelimiter(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func isDelimiter(b byte) bool {
	return b == byte(Underscore) || b == byte(Asterisk)
}
