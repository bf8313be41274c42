package emphasis

import "github.com/cockroachdb/errors"

// Errors returned by the toggler.
var (
	// ErrSelectionsOverlap reports that the selections of one call, or the
	// spans their cursors expanded to, are not pairwise disjoint. This is a
	// caller precondition; no edits are produced.
	ErrSelectionsOverlap = errors.New("selections overlap")

	// ErrInvalidDelimiter reports a delimiter other than '_' or '*'.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)
