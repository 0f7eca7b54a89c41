package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print recent entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := wire.Journal.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No entries yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  [%s]  %s\n",
					e.CreatedAt.Local().Format("2006-01-02 15:04"),
					strings.Join(e.Moods, ", "),
					e.Text,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "max entries to show (0 = all)")
	return cmd
}
