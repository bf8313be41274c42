package emphasis

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/dshills/emtoggle/internal/engine/buffer"
	"github.com/dshills/emtoggle/internal/engine/cursor"
)

// Toggler computes emphasis toggles for a set of selections.
// A Toggler holds no per-call state and is safe for concurrent use.
type Toggler struct {
	expander *Expander
	logger   zerolog.Logger
}

// New creates a toggler. Without options cursors expand to words only and
// nothing is logged.
func New(opts ...Option) *Toggler {
	t := &Toggler{
		expander: NewExpander(nil),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Result is the outcome for one input selection.
type Result struct {
	// Input is the selection as supplied, clamped to the document.
	Input cursor.Selection

	// Span is what the toggle acted on: the selection itself, the span a
	// cursor expanded to, or the tightened run contents when removing.
	Span cursor.Selection

	// Emphasized reports the state before the toggle.
	Emphasized bool

	// Edits are this selection's edits in pre-batch coordinates.
	Edits []buffer.Edit

	// Selection is the resulting selection in post-batch coordinates.
	Selection cursor.Selection
}

// Batch is the outcome of one Toggle call.
type Batch struct {
	// Edits holds every edit of the call in pre-batch coordinates, grouped
	// per selection in document order.
	Edits []buffer.Edit

	// Selections holds the resulting selections in input order.
	Selections []cursor.Selection

	// Results holds the per-selection detail in input order.
	Results []Result
}

// Delta returns the length change of the whole batch.
func (b Batch) Delta() buffer.ByteOffset {
	return buffer.TotalDelta(b.Edits)
}

type target struct {
	input    cursor.Selection
	span     cursor.Selection
	cursor   buffer.ByteOffset
	isCursor bool
}

// Toggle flips emphasis for every selection of doc, inserting d where
// emphasis is added. Selections and the spans cursors expand to must be
// pairwise disjoint; otherwise ErrSelectionsOverlap is returned and no
// edits are produced.
func (t *Toggler) Toggle(doc Document, selections []cursor.Selection, d Delimiter) (Batch, error) {
	if !d.Valid() {
		return Batch{}, errors.Wrapf(ErrInvalidDelimiter, "%q", byte(d))
	}
	n := doc.Len()
	input := cursor.NewCursorSet(selections...)
	input.Clamp(n)
	if err := input.CheckDisjoint(); err != nil {
		return Batch{}, errors.Mark(errors.Wrap(err, "input selections"), ErrSelectionsOverlap)
	}

	targets := make([]target, input.Count())
	spans := make([]cursor.Selection, input.Count())
	for i, sel := range input.All() {
		targets[i] = t.prepare(doc, sel)
		spans[i] = targets[i].span
	}
	expanded := cursor.NewCursorSet(spans...)
	if err := expanded.CheckDisjoint(); err != nil {
		return Batch{}, errors.Mark(errors.Wrap(err, "expanded selections"), ErrSelectionsOverlap)
	}

	order := expanded.DocumentOrder()
	results := make([]Result, len(targets))
	var offset buffer.ByteOffset
	for _, i := range order {
		offset, results[i] = t.step(doc, offset, targets[i], d)
	}

	var edits []buffer.Edit
	for _, i := range order {
		edits = append(edits, results[i].Edits...)
	}
	if err := buffer.ValidateEdits(edits, n); err != nil {
		return Batch{}, errors.Mark(errors.Wrap(err, "toggle edits"), ErrSelectionsOverlap)
	}

	post := n + buffer.TotalDelta(edits)
	batch := Batch{
		Edits:      edits,
		Selections: make([]cursor.Selection, len(results)),
		Results:    results,
	}
	for i := range results {
		results[i].Selection = results[i].Selection.Clamp(post)
		batch.Selections[i] = results[i].Selection
	}
	return batch, nil
}

// prepare nudges and expands cursors. Ranges are used as they are.
func (t *Toggler) prepare(doc Document, sel cursor.Selection) target {
	if !sel.IsEmpty() {
		return target{input: sel, span: sel}
	}
	pos := t.expander.Nudge(doc, sel.Head)
	return target{
		input:    sel,
		span:     t.expander.Expand(doc, pos),
		cursor:   pos,
		isCursor: true,
	}
}

// step toggles one target. offset is the length change caused by the
// targets before it in document order; the returned offset includes this
// target's change.
func (t *Toggler) step(doc Document, offset buffer.ByteOffset, tg target, d Delimiter) (buffer.ByteOffset, Result) {
	res := Result{Input: tg.input, Span: tg.span}

	res.Emphasized = IsEmphasized(doc, tg.span)

	if res.Emphasized {
		res.Span = Tighten(doc, tg.span)
		inner := res.Span.Range()
		res.Edits = Unitalicize(inner)
		if tg.isCursor {
			pos := tg.cursor
			if pos > inner.Start-1 {
				pos--
			}
			if pos > inner.End {
				pos--
			}
			res.Selection = cursor.NewCursorSelection(pos + offset)
		} else {
			res.Selection = res.Span.WithRange(inner.Start-1+offset, inner.End-1+offset)
		}
		t.log(tg, res, offset)
		return offset - 2, res
	}

	it := Italicize(doc, tg.span.Range(), d)
	res.Edits = it.Edits
	if tg.isCursor {
		res.Selection = cursor.NewCursorSelection(it.MapCursor(tg.cursor) + offset)
	} else {
		removed := 2 * buffer.ByteOffset(it.Removed)
		from := max(it.Inner.Start+1+offset, 0)
		to := it.Inner.End + 1 - removed + offset
		res.Selection = tg.span.WithRange(from, to)
	}
	t.log(tg, res, offset)
	return offset + it.Delta(), res
}

func (t *Toggler) log(tg target, res Result, offset buffer.ByteOffset) {
	t.logger.Debug().
		Stringer("input", tg.input).
		Stringer("span", res.Span).
		Bool("emphasized", res.Emphasized).
		Int("edits", len(res.Edits)).
		Int64("offset", offset).
		Stringer("result", res.Selection).
		Msg("toggle emphasis")
}
