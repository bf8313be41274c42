package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/emtoggle/internal/config"
	"github.com/dshills/emtoggle/internal/config/loader"
	"github.com/dshills/emtoggle/internal/emphasis"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := config.Encode(a.cfg.Settings(), loader.FormatOf(a.cfg.Path()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", a.cfg.Path(), data)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set-delimiter NAME",
			Short:     "Save the delimiter inserted by toggles",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"underscore", "asterisk"},
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := emphasis.ParseDelimiter(args[0])
				if err != nil {
					return err
				}
				s := a.cfg.Settings()
				s.Emphasis.Delimiter = d
				if err := a.cfg.Save(s); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "delimiter set to %s in %s\n", d.Name(), a.cfg.Path())
				return nil
			},
		},
	)
	return cmd
}
