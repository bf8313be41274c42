package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/emtoggle/internal/protocol"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		structure string
		watch     bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer JSON-line toggle requests on stdin",
		Long: `serve reads one JSON request per line from stdin and writes one JSON
response per line to stdout, until stdin is closed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if structure == "" {
				structure = a.cfg.Settings().Emphasis.Structure
			}
			t, err := a.toggler(structure)
			if err != nil {
				return err
			}

			if watch {
				go func() {
					if err := a.cfg.Watch(ctx); err != nil {
						a.logger.Warn().Err(err).Msg("settings watch stopped")
					}
				}()
			}

			a.logger.Info().Str("structure", structure).Msg("serving on stdin")
			srv := protocol.NewServer(t,
				protocol.WithDelimiter(a.delimiter),
				protocol.WithLogger(a.logger),
			)
			return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&structure, "structure", "", "cursor expansion: tree or none (default from settings)")
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the settings file when it changes")
	return cmd
}
