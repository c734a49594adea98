package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bask185/forgeport/internal/doctor"
	"github.com/bask185/forgeport/internal/output"
	"github.com/bask185/forgeport/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose the environment",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Check that everything forgeport needs is in place: git and gh on the
PATH, gh logged in as the configured user, a readable registry, a
resolvable public release root, and a working API token if one is
configured.`,
		Example: `  forgeport doctor
  forgeport doctor --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			report := doctor.Run(ctx, cfg)

			if asJSON {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				for _, check := range report.Checks {
					out.Printf("%s %s", statusMark(check.Status), check.Name)
					if check.Detail != "" {
						out.Printf(": %s", check.Detail)
					}
					out.Printf("\n")
				}
			}

			if report.Failed() {
				return fmt.Errorf("some checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the report as JSON")

	return cmd
}

func statusMark(status doctor.Status) string {
	switch status {
	case doctor.StatusOK:
		return styles.SuccessStyle.Render(styles.CheckMark)
	case doctor.StatusWarn:
		return styles.WarningStyle.Render(styles.WarnMark)
	default:
		return styles.ErrorStyle.Render(styles.CrossMark)
	}
}
