package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := wire.Config.Settings()
			if err != nil {
				return err
			}
			_, hasKey, err := wire.Config.Credential()
			if err != nil {
				return err
			}
			sess, hasSession, err := wire.Sessions.LoadSession()
			if err != nil {
				return err
			}

			fmt.Printf("Configured:  %t\n", st.Configured)
			fmt.Printf("Demo mode:   %t\n", st.DemoMode)
			fmt.Printf("AI analysis: %t\n", st.AnalysisEnabled)
			fmt.Printf("API key:     %s\n", presence(hasKey))
			switch {
			case !hasSession:
				fmt.Println("Session:     none")
			case sess.Expired(time.Now()):
				fmt.Printf("Session:     expired (user %s)\n", sess.UserID)
			default:
				fmt.Printf("Session:     active (user %s)\n", sess.UserID)
			}
			return nil
		},
	}
}

func presence(ok bool) string {
	if ok {
		return "stored"
	}
	return "not set"
}
