package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spiral/internal/setup"
)

func setupCmd() *cobra.Command {
	var (
		apiKey string
		demo   bool
	)
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Store configuration and sign in (first run)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !demo && apiKey == "" {
				return fmt.Errorf("either --api-key or --demo is required")
			}
			if demo && apiKey != "" {
				return fmt.Errorf("--api-key and --demo are mutually exclusive")
			}

			var mode setup.Mode = setup.DemoMode{}
			if !demo {
				key, err := setup.ValidateCredential(apiKey)
				if err != nil {
					return err
				}
				mode = setup.APIKeyMode{Credential: key}
			}

			if err := wire.Setup.Run(cmd.Context(), mode); err != nil {
				wire.Log.Error("setup failed", "demo", demo, "error", err)
				return err
			}
			wire.Log.Info("setup complete", "demo", demo)

			if demo {
				fmt.Println("Demo mode ready. AI analysis is off; journaling works as usual.")
			} else {
				fmt.Println("Setup complete. AI analysis is available.")
			}
			fmt.Println("Capture your first entry with: spiral add")
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Anthropic API key (sk-ant-...)")
	cmd.Flags().BoolVar(&demo, "demo", false, "reduced-feature mode requiring no key")
	return cmd
}
