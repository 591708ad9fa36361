package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/wrapped/internal/app"
	"github.com/five82/wrapped/internal/config"
	"github.com/five82/wrapped/internal/prefs"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	at         string
	play       bool
	theme      string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "wrapped [deck.toml[#N]]",
		Short: "Full-screen terminal slideshow with auto-play",
		Long: `wrapped presents a deck of slides one screen at a time. Slides scroll
with an eased transition and can advance on their own timers.

Without a deck argument the deck from the config file is used, or the
built-in deck when none is configured. A "#N" suffix on the deck starts at
slide N (zero-based); otherwise the last position shown for that deck is
restored.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				At:         flags.at,
				Play:       flags.play,
				Theme:      flags.theme,
			}
			if len(args) == 1 {
				opts.Deck = args[0]
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&flags.prefsPath, "prefs", "", "preferences file path (default "+prefs.DefaultPath()+")")
	cmd.Flags().StringVar(&flags.at, "at", "", "start at slide N, overriding the deck suffix and saved position")
	cmd.Flags().BoolVar(&flags.play, "play", false, "start auto-play immediately")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "color theme (Nightfox, Kanagawa, Slate)")

	cmd.AddCommand(newSlidesCmd(&flags))
	cmd.AddCommand(newVersionCmd())
	return cmd
}
