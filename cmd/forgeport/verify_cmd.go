package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bask185/forgeport/internal/github"
	"github.com/bask185/forgeport/internal/migrate"
	"github.com/bask185/forgeport/internal/output"
	"github.com/bask185/forgeport/internal/registry"
	"github.com/bask185/forgeport/internal/ui/styles"
)

func newVerifyCmd() *cobra.Command {
	var (
		org          string
		registryPath string
	)

	cmd := &cobra.Command{
		Use:     "verify <name>",
		Short:   "Compare refs between the forge and GitHub",
		GroupID: GroupMigration,
		Args:    cobra.ExactArgs(1),
		Long: `Verify a migrated repository by listing the refs of both the forge source
and the GitHub repo and diffing the two sets. Exits non-zero when they
diverge.

With a GitHub API token configured (token_env), repo metadata (visibility,
default branch) is printed as well.`,
		Example: `  forgeport verify a51
  forgeport verify a51 --org Holland-Mechanics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			fallback(&org, cfg.Migrate.Org)
			fallback(&registryPath, cfg.Registry)
			if org == "" {
				return fmt.Errorf("no target organization configured (set migrate.org or pass --org)")
			}

			reg, err := registry.Load(registryPath)
			if err != nil {
				return err
			}
			repo, err := reg.Resolve(args[0])
			if err != nil {
				return err
			}

			fullName := org + "/" + repo.Name

			diff, err := migrate.Verify(ctx, repo.SSH, fullName)
			if err != nil {
				return err
			}

			if client, err := github.NewAPIClient(cfg.TokenEnv); err == nil && client != nil {
				if info, err := client.GetRepo(ctx, fullName); err == nil {
					visibility := "public"
					if info.Private {
						visibility = "private"
					}
					out.Printf("%s (%s, default branch %s)\n", info.FullName, visibility, info.DefaultBranch)
					if info.Archived {
						out.Printf("%s repo is archived\n", styles.WarningStyle.Render(styles.WarnMark))
					}
				}
			}

			if diff.InSync() {
				out.Printf("%s %d refs in sync\n", styles.SuccessStyle.Render(styles.CheckMark), diff.SrcCount)
				return nil
			}

			if len(diff.Missing) > 0 {
				out.Printf("%s missing on GitHub: %s\n", styles.ErrorStyle.Render(styles.CrossMark), strings.Join(diff.Missing, ", "))
			}
			if len(diff.Changed) > 0 {
				out.Printf("%s hash mismatch: %s\n", styles.ErrorStyle.Render(styles.CrossMark), strings.Join(diff.Changed, ", "))
			}
			if len(diff.Extra) > 0 {
				out.Printf("%s only on GitHub: %s\n", styles.WarningStyle.Render(styles.WarnMark), strings.Join(diff.Extra, ", "))
			}
			return fmt.Errorf("refs diverge between forge and GitHub")
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "Target GitHub organization (default: migrate.org from config)")
	cmd.Flags().StringVar(&registryPath, "registry", "", "Path to the repo registry JSON")

	return cmd
}
