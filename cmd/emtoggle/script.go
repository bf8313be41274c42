package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/emtoggle/internal/plugin/api"
	"github.com/dshills/emtoggle/internal/plugin/lua"
)

func newScriptCmd(a *app) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "script FILE.lua",
		Short: "Run a Lua script with the ks.emphasis module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := lua.NewState(
				lua.WithExecutionTimeout(timeout),
				lua.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			defer state.Close()

			t, err := a.toggler(a.cfg.Settings().Emphasis.Structure)
			if err != nil {
				return err
			}
			registry := api.NewRegistry()
			if err := registry.Register(api.NewEmphasisModule(t, a.delimiter)); err != nil {
				return err
			}
			if err := registry.InjectAll(state.LuaState()); err != nil {
				return err
			}

			a.logger.Debug().Str("script", args[0]).Msg("running script")
			return state.DoFile(cmd.Context(), args[0])
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", lua.DefaultExecutionTimeout, "script time limit (0 for none)")
	return cmd
}
