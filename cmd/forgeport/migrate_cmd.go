package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/bask185/forgeport/internal/config"
	"github.com/bask185/forgeport/internal/history"
	"github.com/bask185/forgeport/internal/log"
	"github.com/bask185/forgeport/internal/migrate"
	"github.com/bask185/forgeport/internal/output"
	"github.com/bask185/forgeport/internal/registry"
	"github.com/bask185/forgeport/internal/ui/prompt"
	"github.com/bask185/forgeport/internal/ui/styles"
)

func newMigrateCmd() *cobra.Command {
	var (
		org            string
		user           string
		helper         string
		workdir        string
		registryPath   string
		public         bool
		skipVerify     bool
		keepWorkdir    bool
		copyToClip     bool
		skipConfirm    bool
	)

	cmd := &cobra.Command{
		Use:     "migrate [name]",
		Short:   "Migrate a repository from the forge to GitHub",
		GroupID: GroupMigration,
		Args:    cobra.MaximumNArgs(1),
		Long: `Migrate a single repository from the forge to GitHub.

The repository is resolved through the registry (gitea_repos.json),
mirror-cloned into a temp folder, pushed with --mirror to
https://github.com/<org>/<name>, verified, and the temp folder removed.

Without a name, an interactive selector lists the registered repos.`,
		Example: `  forgeport migrate a51                 # migrate the repo named a51
  forgeport migrate                     # pick interactively
  forgeport migrate a51 --helper gcm    # push with the platform credential manager
  forgeport migrate a51 --public        # create the GitHub repo public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			// Unset flags fall back to the loaded config.
			fallback(&org, cfg.Migrate.Org)
			fallback(&user, cfg.Migrate.User)
			fallback(&helper, cfg.Migrate.Helper)
			fallback(&workdir, cfg.Migrate.Workdir)
			fallback(&registryPath, cfg.Registry)

			reg, err := registry.Load(registryPath)
			if err != nil {
				return err
			}

			name, err := pickRepo(reg, args)
			if err != nil {
				return err
			}

			repo, err := reg.Resolve(name)
			if err != nil {
				return err
			}

			switch helper {
			case config.HelperGH, config.HelperGCM:
			default:
				return fmt.Errorf("--helper must be %q or %q", config.HelperGH, config.HelperGCM)
			}

			opts := migrate.Options{
				Name:        name,
				SourceURL:   repo.SSH,
				Org:         org,
				User:        user,
				UseGH:       helper == config.HelperGH,
				Workdir:     workdir,
				Private:     !public,
				SkipVerify:  skipVerify,
				KeepWorkdir: keepWorkdir,
			}

			if !skipConfirm && prompt.Interactive() {
				question := fmt.Sprintf("Migrate %s to github.com/%s/%s as %s?", repo.SSH, org, name, user)
				res, err := prompt.Confirm(question, true)
				if err != nil {
					return err
				}
				if res.Cancelled || !res.Confirmed {
					return fmt.Errorf("aborted")
				}
			}

			result, err := migrate.Run(ctx, opts)
			if err != nil {
				return err
			}

			if result.Created {
				out.Printf("%s Created and mirrored %s\n", styles.SuccessStyle.Render(styles.CheckMark), result.RepoURL)
			} else {
				out.Printf("%s Mirrored %s\n", styles.SuccessStyle.Render(styles.CheckMark), result.RepoURL)
			}

			if result.Verified {
				printRefDiff(out, result)
				if !result.Diff.InSync() {
					return fmt.Errorf("refs diverge between forge and GitHub")
				}
			} else if !skipVerify {
				l.Println("Refs were pushed but not verified.")
			}

			entry := history.Entry{
				Name:     name,
				FullName: result.FullName,
				URL:      result.RepoURL,
				Refs:     result.Diff.SrcCount,
				Verified: result.Verified,
				Time:     time.Now(),
			}
			if err := history.Record(entry); err != nil {
				l.Printf("Warning: failed to record history: %v\n", err)
			}

			if copyToClip {
				if err := clipboard.WriteAll(result.RepoURL); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "Target GitHub organization (default: migrate.org from config)")
	cmd.Flags().StringVar(&user, "user", "", "GitHub username to push under (default: migrate.user from config)")
	cmd.Flags().StringVar(&helper, "helper", "", "Credential provider for github.com: gh or gcm")
	cmd.Flags().StringVar(&workdir, "workdir", "", "Temp working folder for the bare clone")
	cmd.Flags().StringVar(&registryPath, "registry", "", "Path to the repo registry JSON")
	cmd.Flags().BoolVar(&public, "public", false, "Create the GitHub repo public instead of private")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "Skip the post-push ref comparison")
	cmd.Flags().BoolVar(&keepWorkdir, "keep-workdir", false, "Keep the temp mirror for inspection")
	cmd.Flags().BoolVar(&copyToClip, "copy", false, "Copy the new repo URL to the clipboard")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// pickRepo resolves the repo name from args or an interactive selector.
func pickRepo(reg *registry.Registry, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	names := reg.Names()
	if len(names) == 0 {
		return "", fmt.Errorf("registry %s has no entries; add one with 'forgeport repos add'", reg.Path())
	}

	if !prompt.Interactive() {
		return "", fmt.Errorf("no repository named and no TTY for selection; known repos: %s",
			strings.Join(names, ", "))
	}

	res, err := prompt.Select("Select a repository to migrate", names)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", fmt.Errorf("aborted")
	}
	return res.Value, nil
}

// printRefDiff reports the verification outcome.
func printRefDiff(out *output.Printer, result *migrate.Result) {
	diff := result.Diff
	if diff.InSync() {
		out.Printf("%s %d refs verified\n", styles.SuccessStyle.Render(styles.CheckMark), diff.SrcCount)
		return
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
}

// fallback assigns value to target when the flag was left unset.
func fallback(target *string, value string) {
	if *target == "" {
		*target = value
	}
}
