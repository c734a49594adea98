package main

import (
	"github.com/spf13/cobra"

	"github.com/bask185/forgeport/internal/history"
	"github.com/bask185/forgeport/internal/output"
	"github.com/bask185/forgeport/internal/ui/styles"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show past migrations",
		GroupID: GroupMigration,
		Args:    cobra.NoArgs,
		Long: `List completed migrations, newest first. Each line shows when the repo
was migrated, where it landed, and how many refs arrived.`,
		Example: `  forgeport history
  forgeport history -n 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			entries, err := history.Load()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				out.Println("No migrations recorded yet.")
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			for _, entry := range entries {
				mark := styles.WarningStyle.Render(styles.WarnMark)
				if entry.Verified {
					mark = styles.SuccessStyle.Render(styles.CheckMark)
				}
				out.Printf("%s %s  %s -> %s  (%d refs)\n",
					mark,
					entry.Time.Local().Format("2006-01-02 15:04"),
					styles.AccentStyle.Render(entry.Name),
					entry.FullName,
					entry.Refs,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many entries")

	return cmd
}
