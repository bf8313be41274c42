// Package markup provides the tree-backed emphasis lookup used to expand
// cursors. It parses the document as CommonMark with goldmark and reports
// the italic run around a position.
//
// Parsed trees are cached by a hash of the document text, so repeated
// lookups against one revision parse it once.
package markup
