package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spiral/internal/journal"
)

// add [text...]: capture one entry. Moods default to the standard pair
// unless --mood is given.
func addCmd() *cobra.Command {
	var moods []string
	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Capture a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := wire.Config.Settings()
			if err != nil {
				return err
			}
			if !st.Configured {
				return fmt.Errorf("not set up yet; run `spiral setup` first")
			}

			draft := journal.NewDraft()
			if cmd.Flags().Changed("mood") {
				draft.SetMoods(moods)
			}
			draft.SetText(strings.Join(args, " "))

			e, err := wire.Journal.Save(cmd.Context(), draft)
			if err != nil {
				return err
			}
			wire.Log.Info("entry saved", "id", e.ID, "moods", e.Moods)
			fmt.Printf("Saved entry %s [%s]\n", e.ID, strings.Join(e.Moods, ", "))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&moods, "mood", nil, "mood tag (repeatable, replaces the default pair)")
	return cmd
}
