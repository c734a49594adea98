package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bask185/forgeport/internal/git"
	"github.com/bask185/forgeport/internal/output"
	"github.com/bask185/forgeport/internal/release"
)

func newChangelogCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:     "changelog",
		Short:   "Generate a changelog from the semver tag history",
		GroupID: GroupRelease,
		Args:    cobra.NoArgs,
		Long: `Build a changelog for the repository you are currently in.

Every vX.Y.Z tag becomes a section headed by the tag and its date, newest
first, listing the commit subjects since the previous tag. Merge commits
are skipped.`,
		Example: `  forgeport changelog                   # print to stdout
  forgeport changelog -o CHANGELOG.txt  # write to a file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			repoRoot, err := git.RepoRoot(ctx, cwd)
			if err != nil {
				return err
			}

			changelog, err := release.BuildChangelog(ctx, repoRoot)
			if err != nil {
				return err
			}

			if outputPath == "" {
				out.Printf("%s", changelog)
				return nil
			}
			if err := os.WriteFile(outputPath, []byte(changelog), 0644); err != nil {
				return fmt.Errorf("write changelog: %w", err)
			}
			out.Printf("Wrote %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the changelog to a file instead of stdout")

	return cmd
}
