package commands

import (
	"github.com/spf13/cobra"

	"spiral/internal/app"
)

var (
	home    string
	authURL string
	debug   bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "spiral",
		Short:         "Mood journal with optional AI analysis",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if authURL != "" {
				cfg.AuthURL = authURL
			}
			if debug {
				cfg.Debug = true
			}
			wire, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.spiral)")
	root.PersistentFlags().StringVar(&authURL, "auth-url", "", "auth service base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	root.AddCommand(setupCmd(), statusCmd(), addCmd(), listCmd())
	return root.Execute()
}
