package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bask185/forgeport/internal/editor"
	"github.com/bask185/forgeport/internal/format"
	"github.com/bask185/forgeport/internal/git"
	"github.com/bask185/forgeport/internal/log"
	"github.com/bask185/forgeport/internal/output"
	"github.com/bask185/forgeport/internal/release"
	"github.com/bask185/forgeport/internal/ui/prompt"
	"github.com/bask185/forgeport/internal/ui/styles"
)

func newReleaseCmd() *cobra.Command {
	var (
		message     string
		publicRoot  string
		skipPublish bool
		skipConfirm bool
	)

	cmd := &cobra.Command{
		Use:     "release [version]",
		Short:   "Tag, push and publish a new version",
		GroupID: GroupRelease,
		Args:    cobra.MaximumNArgs(1),
		Long: `Cut a release of the repository you are currently in.

The working tree is committed (if dirty), tagged vX.Y.Z and pushed with
its tags. A changelog is regenerated from the semver tag history, copied
into the staging directory (release/<machine>/<version>, release/<version>
or release/), and the staged artifacts are moved into the public release
root under <machine>/<version>/. The public root repo is then committed
and pushed as well.

Without a version argument, an interactive prompt asks for one.`,
		Example: `  forgeport release v1.4.0
  forgeport release v1.4.0 -m "Fix homing on the A51"
  forgeport release v1.4.0 --no-publish   # tag and push, skip the public root`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			repoRoot, err := git.RepoRoot(ctx, cwd)
			if err != nil {
				return err
			}
			machine, err := git.RepoName(ctx, repoRoot)
			if err != nil {
				return err
			}

			version, err := pickVersion(args)
			if err != nil {
				return err
			}
			if err := release.ValidateVersion(version); err != nil {
				return err
			}

			if git.TagExists(ctx, repoRoot, version) && !skipConfirm {
				if !prompt.Interactive() {
					return fmt.Errorf("tag %s already exists; re-run with --yes to move it", version)
				}
				res, err := prompt.Confirm(fmt.Sprintf("Tag %s already exists. Move it to the current commit?", version), false)
				if err != nil {
					return err
				}
				if res.Cancelled || !res.Confirmed {
					return fmt.Errorf("aborted")
				}
			}

			if message == "" {
				message, err = releaseMessage(version)
				if err != nil {
					return err
				}
			}
			if strings.TrimSpace(message) == "" {
				return fmt.Errorf("empty release message")
			}

			if !skipConfirm && prompt.Interactive() {
				if err := releaseChecklist(machine, version); err != nil {
					return err
				}
			}

			if err := release.CommitAndTag(ctx, repoRoot, version, message, true); err != nil {
				return err
			}
			out.Printf("%s Tagged %s\n", styles.SuccessStyle.Render(styles.CheckMark), version)

			if err := release.PushSource(ctx, repoRoot); err != nil {
				return err
			}
			out.Printf("%s Pushed source and tags\n", styles.SuccessStyle.Render(styles.CheckMark))

			changelog, err := release.BuildChangelog(ctx, repoRoot)
			if err != nil {
				return err
			}
			changelogPath := filepath.Join(repoRoot, release.ChangelogName)
			if err := os.WriteFile(changelogPath, []byte(changelog), 0644); err != nil {
				return fmt.Errorf("write changelog: %w", err)
			}
			out.Printf("%s Wrote %s\n", styles.SuccessStyle.Render(styles.CheckMark), release.ChangelogName)

			if skipPublish {
				l.Println("Skipping publish to the public release root.")
				return nil
			}

			stagingDir, err := release.FindStagingDir(repoRoot, machine, version)
			if err != nil {
				return err
			}
			if err := release.CopyChangelog(changelogPath, stagingDir); err != nil {
				return err
			}

			fallback(&publicRoot, cfg.Release.PublicRoot)
			root, err := release.ResolvePublicRoot(publicRoot)
			if err != nil {
				return err
			}

			layout := cfg.Release.Layout
			if layout == "" {
				layout = format.DefaultReleaseLayout
			}
			relPath := format.ReleasePath(layout, format.LayoutParams{Machine: machine, Version: version})

			dest, err := release.MoveStaging(stagingDir, root, relPath)
			if err != nil {
				return err
			}
			out.Printf("%s Staged artifacts moved to %s\n", styles.SuccessStyle.Render(styles.CheckMark), dest)

			publishMsg := fmt.Sprintf("Release %s %s", machine, version)
			if err := release.PublishPublic(ctx, root, publishMsg); err != nil {
				return err
			}
			out.Printf("%s Published %s %s\n", styles.SuccessStyle.Render(styles.CheckMark), machine, version)

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Release message (opens an editor when omitted)")
	cmd.Flags().StringVar(&publicRoot, "root", "", "Public release root (default: release.public_root from config)")
	cmd.Flags().BoolVar(&skipPublish, "no-publish", false, "Tag and push only, skip the public release root")
	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompts")

	return cmd
}

// pickVersion resolves the version from args or an interactive prompt.
func pickVersion(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !prompt.Interactive() {
		return "", fmt.Errorf("no version given and no TTY to ask for one")
	}
	res, err := prompt.TextInput("Version to release", "v1.0.0")
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", fmt.Errorf("aborted")
	}
	return strings.TrimSpace(res.Value), nil
}

// releaseChecklist walks the operator through the pre-release questions.
// Any "no" aborts the release.
func releaseChecklist(machine, version string) error {
	questions := []string{
		fmt.Sprintf("Is the version number bumped to %s everywhere it appears?", version),
		"Is this a fresh build of the current sources?",
		"Are all binaries and scripts staged in the release folder?",
		fmt.Sprintf("Release %s %s?", machine, version),
	}
	for _, question := range questions {
		res, err := prompt.Confirm(question, true)
		if err != nil {
			return err
		}
		if res.Cancelled || !res.Confirmed {
			return fmt.Errorf("aborted")
		}
	}
	return nil
}

// releaseMessage collects the release message through the user's editor,
// falling back to a plain prompt when no TTY is attached.
func releaseMessage(version string) (string, error) {
	if !prompt.Interactive() {
		return "", fmt.Errorf("no release message given; pass one with -m")
	}
	content, err := editor.Open(fmt.Sprintf("Release %s\n\n%s", version, editor.DefaultTemplate))
	if err != nil {
		return "", err
	}
	return editor.StripComments(content), nil
}
