package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/bask185/forgeport/internal/cmd"
)

// HasChanges returns true if the work tree at dir has uncommitted changes.
func HasChanges(ctx context.Context, dir string) (bool, error) {
	out, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// AddAll stages all changes in dir.
func AddAll(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "add", "-A")
}

// Commit creates a commit with the given message. Returns false without an
// error when git refuses because nothing is staged, so release flows can
// proceed on a clean tree. Git reports that case on stdout, hence the
// combined capture.
func Commit(ctx context.Context, dir, message string) (bool, error) {
	out, err := cmd.CombinedOutputContext(ctx, "", "git", gitArgs(dir, []string{"commit", "-m", message})...)
	if err == nil {
		return true, nil
	}
	msg := string(out)
	if strings.Contains(msg, "nothing to commit") || strings.Contains(msg, "nothing added to commit") {
		return false, nil
	}
	if trimmed := strings.TrimSpace(msg); trimmed != "" {
		return false, fmt.Errorf("commit failed: %s", trimmed)
	}
	return false, err
}

// Push pushes the current branch to origin.
func Push(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "push")
}

// PushTags pushes all tags to origin.
func PushTags(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "push", "--tags")
}
