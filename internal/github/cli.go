// Package github talks to GitHub two ways: through the gh CLI for anything
// that needs the user's interactive auth state (repo creation, credential
// setup), and through the REST API when a token is available (read-only
// metadata for verify/doctor).
package github

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bask185/forgeport/internal/cmd"
	"github.com/bask185/forgeport/internal/log"
)

// Check verifies that the gh CLI is available and authenticated.
func Check(ctx context.Context) error {
	if _, err := exec.LookPath("gh"); err != nil {
		return fmt.Errorf("gh not found: please install GitHub CLI (https://cli.github.com)")
	}

	ghCmd := exec.CommandContext(ctx, "gh", "auth", "status")
	var stderr bytes.Buffer
	ghCmd.Stderr = &stderr

	if err := ghCmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if strings.Contains(errMsg, "not logged") || strings.Contains(errMsg, "no accounts") {
			return fmt.Errorf("gh not authenticated: please run 'gh auth login'")
		}
		if errMsg != "" {
			return fmt.Errorf("gh auth check failed: %s", errMsg)
		}
		return fmt.Errorf("gh not authenticated: please run 'gh auth login'")
	}

	return nil
}

// RepoExists returns true when gh can view owner/name.
func RepoExists(ctx context.Context, fullName string) bool {
	log.FromContext(ctx).Command("gh", "repo", "view", fullName)
	ghCmd := exec.CommandContext(ctx, "gh", "repo", "view", fullName)
	return ghCmd.Run() == nil
}

// CreateRepo creates a repository via gh.
func CreateRepo(ctx context.Context, fullName string, private bool) error {
	visibility := "--public"
	if private {
		visibility = "--private"
	}
	if err := cmd.RunContext(ctx, "", nil, "gh", "repo", "create", fullName, visibility); err != nil {
		return fmt.Errorf("gh repo create failed: %w", err)
	}
	return nil
}

// Login returns the login of the currently authenticated gh user, or an
// empty string if gh cannot tell.
func Login(ctx context.Context) string {
	out, err := cmd.OutputContext(ctx, "", "gh",
		"api", "user", "-H", "Accept: application/vnd.github+json", "-q", ".login")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// SetupGit wires gh into git's credential machinery for github.com.
// Repo-local only as far as git is concerned; gh writes to the user's
// gitconfig credential section.
func SetupGit(ctx context.Context) error {
	if err := cmd.RunContext(ctx, "", nil, "gh", "auth", "setup-git"); err != nil {
		return fmt.Errorf("gh auth setup-git failed: %w", err)
	}
	return nil
}

// AuthStatus prints gh's auth status for a hostname to the logger.
func AuthStatus(ctx context.Context, hostname string) error {
	out, err := cmd.OutputContext(ctx, "", "gh", "auth", "status", "--hostname", hostname)
	if err != nil {
		return fmt.Errorf("gh auth status failed: %w", err)
	}
	log.FromContext(ctx).Printf("%s", out)
	return nil
}

// RepoURL returns the browser URL for owner/name.
func RepoURL(fullName string) string {
	return "https://github.com/" + fullName
}

// PushURL returns the HTTPS clone URL with the push user embedded, so a
// stale identity from an askpass program or global helper cannot take over.
func PushURL(user, fullName string) string {
	return fmt.Sprintf("https://%s@github.com/%s.git", user, fullName)
}

// SplitFullName splits "org/repo" into its parts.
func SplitFullName(fullName string) (owner, repo string, err error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo %q: expected org/repo format", fullName)
	}
	return parts[0], parts[1], nil
}
