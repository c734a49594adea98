package migrate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bask185/forgeport/internal/git"
	"github.com/bask185/forgeport/internal/github"
	"github.com/bask185/forgeport/internal/log"
	"github.com/bask185/forgeport/internal/registry"
)

// remoteName is the remote the mirror pushes to.
const remoteName = "github"

// Options configures a single migration run.
type Options struct {
	Name      string // repo short name, validated against the registry charset
	SourceURL string // clone URL on the forge
	Org       string // target GitHub organization
	User      string // GitHub username to push under
	UseGH     bool   // credential helper: true = gh, false = platform manager
	Workdir   string // temp folder for the bare mirror clone

	Private     bool // visibility when the repo has to be created
	SkipVerify  bool // skip the post-push ref comparison
	KeepWorkdir bool // keep the mirror around for inspection
}

// Result describes a finished migration.
type Result struct {
	FullName string // org/name
	RepoURL  string // browser URL
	Created  bool   // repo was created (vs. already existed)
	Verified bool   // ref comparison ran
	Diff     git.RefDiff
}

// Run migrates one repository from the forge to GitHub.
func Run(ctx context.Context, opts Options) (*Result, error) {
	l := log.FromContext(ctx)

	if err := registry.ValidateName(opts.Name); err != nil {
		return nil, err
	}
	if opts.Org == "" {
		return nil, fmt.Errorf("no target organization configured (set migrate.org or pass --org)")
	}
	if opts.User == "" {
		return nil, fmt.Errorf("no push user configured (set migrate.user or pass --user)")
	}

	fullName := opts.Org + "/" + opts.Name
	res := &Result{
		FullName: fullName,
		RepoURL:  github.RepoURL(fullName),
	}

	workRoot, err := filepath.Abs(opts.Workdir)
	if err != nil {
		return nil, fmt.Errorf("resolve workdir: %w", err)
	}
	mirror, err := ensureWorkdir(workRoot, opts.Name)
	if err != nil {
		return nil, err
	}
	if !opts.KeepWorkdir {
		defer func() {
			if err := cleanupWorkdir(workRoot, mirror); err != nil {
				l.Printf("Warning: cleanup failed: %v\n", err)
			}
		}()
	}

	l.Printf("Mirror-cloning %s\n", opts.SourceURL)
	if err := git.CloneMirror(ctx, opts.SourceURL, mirror); err != nil {
		return nil, err
	}

	if github.RepoExists(ctx, fullName) {
		l.Printf("GitHub repo already exists: %s\n", res.RepoURL)
	} else {
		if err := github.CreateRepo(ctx, fullName, opts.Private); err != nil {
			return nil, err
		}
		res.Created = true
		l.Printf("Created %s\n", res.RepoURL)
	}

	if opts.UseGH {
		if err := verifyGHIdentity(ctx, opts.User); err != nil {
			return nil, err
		}
	}

	pushURL := github.PushURL(opts.User, fullName)
	if err := git.SetRemote(ctx, mirror, remoteName, pushURL); err != nil {
		return nil, err
	}
	if err := git.ConfigurePushCredentials(ctx, mirror, opts.User); err != nil {
		return nil, err
	}

	l.Printf("Pushing all refs to %s\n", res.RepoURL)
	err = git.MirrorPush(ctx, mirror, git.MirrorPushOptions{
		Remote:      remoteName,
		User:        opts.User,
		UseGHHelper: opts.UseGH,
	})
	if err != nil {
		return nil, fmt.Errorf("%w\n%s", err, pushHints(opts.UseGH, opts.User))
	}

	if !opts.SkipVerify {
		diff, err := Verify(ctx, opts.SourceURL, fullName)
		if err != nil {
			l.Printf("Warning: verification failed: %v\n", err)
		} else {
			res.Verified = true
			res.Diff = diff
		}
	}

	return res, nil
}

// verifyGHIdentity ensures gh is logged in as the configured push user and
// wires gh into git's credential lookup.
func verifyGHIdentity(ctx context.Context, user string) error {
	who := github.Login(ctx)
	if who != user {
		if who == "" {
			who = "UNKNOWN"
		}
		return fmt.Errorf("gh is logged in as %q, expected %q\nRun: gh auth login -h github.com (and authorize SSO if required)", who, user)
	}
	if err := github.SetupGit(ctx); err != nil {
		return err
	}
	return github.AuthStatus(ctx, "github.com")
}

// pushHints returns remediation guidance for a failed mirror push.
func pushHints(useGH bool, user string) string {
	if useGH {
		return fmt.Sprintf("Hint: ensure 'gh auth status -h github.com' shows %q and SSO is authorized (gh auth refresh -h github.com -s repo,workflow).", user)
	}
	return "Hint: ensure a valid PAT for github.com is stored in the credential manager for that username."
}
