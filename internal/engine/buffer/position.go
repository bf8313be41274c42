package buffer

import (
	"github.com/google/uuid"
)

// ByteOffset represents a byte position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// RevisionID uniquely identifies a buffer snapshot.
// Every successful ApplyEdits produces a new revision.
type RevisionID uuid.UUID

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(uuid.New())
}

// String returns the canonical textual form of the revision.
func (r RevisionID) String() string {
	return uuid.UUID(r).String()
}

// IsZero reports whether r is the zero revision.
func (r RevisionID) IsZero() bool {
	return uuid.UUID(r) == uuid.Nil
}

// Clamp limits offset to [0, max].
func Clamp(offset, max ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
