package git

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bask185/forgeport/internal/forge"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if the given path is inside a git work tree.
func IsInsideRepo(ctx context.Context, path string) bool {
	err := runGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// RepoRoot returns the top-level directory of the repo containing path.
func RepoRoot(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// OriginURL returns remote.origin.url for the repo at path.
func OriginURL(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// RepoName derives a repo's name from remote.origin.url, falling back to the
// repo root's directory name.
func RepoName(ctx context.Context, path string) (string, error) {
	if url, err := OriginURL(ctx, path); err == nil && url != "" {
		if name := forge.RepoName(url); name != "" {
			return name, nil
		}
	}
	root, err := RepoRoot(ctx, path)
	if err != nil {
		return "", err
	}
	return filepath.Base(root), nil
}
