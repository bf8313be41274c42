package main

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dshills/emtoggle/internal/engine/cursor"
)

// parseSelection accepts "anchor:head" or a single cursor offset.
func parseSelection(s string) (cursor.Selection, error) {
	anchorText, headText, isRange := strings.Cut(strings.TrimSpace(s), ":")
	anchor, err := strconv.ParseInt(anchorText, 10, 64)
	if err != nil {
		return cursor.Selection{}, errors.Newf("selection %q: anchor is not an offset", s)
	}
	if !isRange {
		return cursor.NewCursorSelection(anchor), nil
	}
	head, err := strconv.ParseInt(headText, 10, 64)
	if err != nil {
		return cursor.Selection{}, errors.Newf("selection %q: head is not an offset", s)
	}
	return cursor.NewSelection(anchor, head), nil
}

func formatSelection(sel cursor.Selection) string {
	if sel.IsEmpty() {
		return strconv.FormatInt(sel.Head, 10)
	}
	return strconv.FormatInt(sel.Anchor, 10) + ":" + strconv.FormatInt(sel.Head, 10)
}
