package buffer

import "github.com/cockroachdb/errors"

// Errors returned by buffer operations.
var (
	// ErrRangeInvalid indicates an edit range outside the document or with end < start.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrEditsOverlap indicates two edits of one batch touch the same bytes.
	ErrEditsOverlap = errors.New("edits overlap")
)
