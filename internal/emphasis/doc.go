// Package emphasis toggles single-delimiter emphasis (italic) markup around
// the selections of a plain-text document.
//
// For every selection the Toggler decides whether the addressed text is
// already emphasized. If it is, the two delimiters around it are removed;
// otherwise delimiters are inserted around the text, inside any surrounding
// whitespace, after removing emphasis pairs nested inside it. A cursor with
// no extent is first expanded to the enclosing emphasis run, else to the
// word under it.
//
// All edits of one call are expressed against the document as it was
// before the call, and the resulting selections against the document after
// the whole batch is applied. The package never applies edits itself:
//
//	t := emphasis.New(emphasis.WithStructure(markup.NewResolver()))
//	batch, err := t.Toggle(doc, selections, emphasis.Underscore)
//	if err != nil {
//	    return err
//	}
//	next, err := doc.ApplyEdits(batch.Edits)
//
// Detection recognizes both '_' and '*' regardless of the delimiter passed
// to Toggle; that delimiter is only used for new insertions.
package emphasis
