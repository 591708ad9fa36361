package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/wrapped/internal/app"
)

func newSlidesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "slides [deck.toml]",
		Short: "List the slides of a deck with their durations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			return app.ListSlides(cmd.OutOrStdout(), flags.configPath, ref)
		},
	}
}
