// Package buffer provides the immutable document snapshot that emphasis
// toggling reads from, and the batch application step a host uses to commit
// the resulting edits.
//
// The buffer package provides:
//
//   - Byte-offset positions and half-open ranges
//   - Edit values expressed in pre-edit coordinates
//   - Clamped slicing with an optional context radius
//   - Unicode word lookup at a position
//   - Atomic application of an edit batch, producing a new snapshot
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("x word y")
//
//	// Word under the cursor
//	r, ok := buf.WordAt(4) // [2:6), true
//
//	// Apply a batch; edits are in original coordinates
//	next, err := buf.ApplyEdits([]buffer.Edit{
//	    buffer.NewInsert(2, "_"),
//	    buffer.NewInsert(6, "_"),
//	})
//	// next.Text() == "x _word_ y"
//
// Thread Safety:
//
// A Buffer never changes after construction. ApplyEdits returns a new
// Buffer, so snapshots can be shared freely between goroutines.
package buffer
