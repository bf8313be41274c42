package buffer

import "fmt"

// Range represents a byte range in the buffer.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start ByteOffset // Inclusive start position
	End   ByteOffset // Exclusive end position
}

// NewRange creates a new Range from start and end offsets.
// The offsets are swapped if given in the wrong order.
func NewRange(start, end ByteOffset) Range {
	if end < start {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (Start <= End).
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset ByteOffset) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsInclusive returns true if offset is within [Start, End].
// A cursor sitting on either edge of a word counts as inside it.
func (r Range) ContainsInclusive(offset ByteOffset) bool {
	return offset >= r.Start && offset <= r.End
}

// ContainsRange returns true if the given range is entirely within this range.
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Overlaps returns true if this range overlaps with another range.
// Empty ranges never overlap anything.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Clamp limits both ends of the range to [0, max].
func (r Range) Clamp(max ByteOffset) Range {
	return Range{Start: Clamp(r.Start, max), End: Clamp(r.End, max)}
}

// Grow returns the range widened by radius on both sides, clamped to [0, max].
func (r Range) Grow(radius, max ByteOffset) Range {
	return Range{Start: Clamp(r.Start-radius, max), End: Clamp(r.End+radius, max)}
}
