package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/emtoggle/internal/emphasis"
	"github.com/dshills/emtoggle/internal/engine/buffer"
	"github.com/dshills/emtoggle/internal/engine/cursor"
)

type toggleOptions struct {
	selections []string
	delimiter  string
	structure  string
	write      bool
	diff       bool
	render     bool
}

func newToggleCmd(a *app) *cobra.Command {
	var opts toggleOptions
	cmd := &cobra.Command{
		Use:   "toggle FILE",
		Short: "Toggle emphasis at the given selections of FILE (- for stdin)",
		Example: `  emtoggle toggle notes.md -s 10:14 -s 30
  echo "one two" | emtoggle toggle - -s 0:3 -d asterisk`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runToggle(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.selections, "selection", "s", nil,
		"selection as anchor:head or a cursor offset (repeatable)")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "",
		"delimiter to insert: underscore, asterisk, _ or * (default from settings)")
	cmd.Flags().StringVar(&opts.structure, "structure", "",
		"cursor expansion: tree or none (default from settings)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false,
		"write the result back to FILE")
	cmd.Flags().BoolVar(&opts.diff, "diff", false,
		"print an inline diff instead of the result")
	cmd.Flags().BoolVar(&opts.render, "render", false,
		"print the result rendered as markdown")
	cmd.MarkFlagsMutuallyExclusive("diff", "render")
	_ = cmd.MarkFlagRequired("selection")
	return cmd
}

func (a *app) runToggle(cmd *cobra.Command, path string, opts toggleOptions) error {
	if opts.write && path == "-" {
		return errors.New("--write needs a file, not stdin")
	}

	settings := a.cfg.Settings()
	delim := settings.Emphasis.Delimiter
	if opts.delimiter != "" {
		d, err := emphasis.ParseDelimiter(opts.delimiter)
		if err != nil {
			return err
		}
		delim = d
	}
	structure := settings.Emphasis.Structure
	if opts.structure != "" {
		structure = opts.structure
	}

	sels := make([]cursor.Selection, 0, len(opts.selections))
	for _, s := range opts.selections {
		sel, err := parseSelection(s)
		if err != nil {
			return err
		}
		sels = append(sels, sel)
	}

	doc, err := readDocument(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	t, err := a.toggler(structure)
	if err != nil {
		return err
	}
	batch, err := t.Toggle(doc, sels, delim)
	if err != nil {
		return err
	}
	next, err := doc.ApplyEdits(batch.Edits)
	if err != nil {
		return err
	}

	resulting := make([]string, len(batch.Selections))
	for i, sel := range batch.Selections {
		resulting[i] = formatSelection(sel)
	}
	a.logger.Info().
		Str("file", path).
		Int("edits", len(batch.Edits)).
		Strs("selections", resulting).
		Msg("toggled")

	out := cmd.OutOrStdout()
	switch {
	case opts.write:
		return writeDocument(path, next.Text())
	case opts.diff:
		_, err = fmt.Fprintln(out, renderDiff(doc.Text(), next.Text()))
	case opts.render:
		var rendered string
		rendered, err = glamour.Render(next.Text(), glamourStyle(out))
		if err == nil {
			_, err = io.WriteString(out, rendered)
		}
	default:
		_, err = io.WriteString(out, next.Text())
	}
	return errors.Wrap(err, "writing output")
}

func glamourStyle(w io.Writer) string {
	if isTerminal(w) {
		return "dark"
	}
	return "notty"
}

func readDocument(stdin io.Reader, path string) (*buffer.Buffer, error) {
	if path == "-" {
		doc, err := buffer.NewBufferFromReader(stdin)
		return doc, errors.Wrap(err, "reading stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	doc, err := buffer.NewBufferFromReader(f)
	return doc, errors.Wrapf(err, "reading %s", path)
}

// writeDocument replaces path atomically, keeping its permissions.
func writeDocument(path, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, strings.NewReader(text)); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "replacing %s", path)
}
