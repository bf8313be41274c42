package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/emtoggle/internal/config"
	"github.com/dshills/emtoggle/internal/emphasis"
	"github.com/dshills/emtoggle/internal/markup"
)

// app is the state shared by all subcommands, built before any of them run.
type app struct {
	configPath string
	logLevel   string
	pretty     bool

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "emtoggle",
		Short:         "Toggle italic emphasis in markdown text",
		Long:          `emtoggle adds or removes single-delimiter emphasis (_word_ or *word*) around selections of a markdown document.`,
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"settings file (default: $EMTOGGLE_CONFIG or the user config dir)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level, overrides the settings file")
	root.PersistentFlags().BoolVar(&a.pretty, "pretty", false,
		"human-readable logs even when stderr is not a terminal")

	root.AddCommand(
		newToggleCmd(a),
		newServeCmd(a),
		newScriptCmd(a),
		newConfigCmd(a),
	)
	return root
}

// init loads the settings and sets up logging.
func (a *app) init(ctx context.Context, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path := a.configPath
	if path == "" {
		path = os.Getenv("EMTOGGLE_CONFIG")
	}
	if path == "" {
		path = config.DefaultPath()
	}

	a.logger = newLogger(stderr, zerolog.InfoLevel, a.pretty)
	a.cfg = config.New(config.WithPath(path), config.WithLogger(a.logger))
	if err := a.cfg.Load(ctx); err != nil {
		return errors.Wrap(err, "loading settings")
	}

	level, err := a.cfg.Settings().LogLevel()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		if level, err = zerolog.ParseLevel(a.logLevel); err != nil {
			return errors.Wrapf(err, "--log-level %q", a.logLevel)
		}
	}
	a.logger = a.logger.Level(level)
	return nil
}

// toggler builds a toggler for the given structure name.
func (a *app) toggler(structure string) (*emphasis.Toggler, error) {
	var s emphasis.Structure
	switch structure {
	case config.StructureTree:
		s = markup.NewResolver(markup.WithLogger(a.logger))
	case config.StructureNone:
		s = emphasis.NoStructure{}
	default:
		return nil, errors.Newf("unknown structure %q (want %s or %s)", structure, config.StructureTree, config.StructureNone)
	}
	return emphasis.New(emphasis.WithStructure(s), emphasis.WithLogger(a.logger)), nil
}

// delimiter reads the configured delimiter at call time.
func (a *app) delimiter() emphasis.Delimiter {
	return a.cfg.Settings().Emphasis.Delimiter
}

// newLogger writes JSON logs, or console logs when pretty is set or w is a
// terminal.
func newLogger(w io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	if isTerminal(w) {
		pretty = true
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
