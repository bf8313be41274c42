package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	deletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// renderDiff shows the changes between before and after inline, with
// deletions as [-text-] and insertions as {+text+}.
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			sb.WriteString(deletedStyle.Render("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffInsert:
			sb.WriteString(addedStyle.Render("{+" + d.Text + "+}"))
		}
	}
	return sb.String()
}
