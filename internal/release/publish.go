package release

import (
	"context"
	"fmt"

	"github.com/bask185/forgeport/internal/git"
	"github.com/bask185/forgeport/internal/log"
)

// CommitAndTag commits all pending changes in the source repo and creates
// the annotated release tag. forceTag replaces an existing tag.
func CommitAndTag(ctx context.Context, repoRoot, version, message string, forceTag bool) error {
	l := log.FromContext(ctx)

	dirty, err := git.HasChanges(ctx, repoRoot)
	if err != nil {
		return err
	}
	if dirty {
		if err := git.AddAll(ctx, repoRoot); err != nil {
			return err
		}
		created, err := git.Commit(ctx, repoRoot, message)
		if err != nil {
			return err
		}
		if !created {
			l.Println("No commit created (possibly no changes). Proceeding.")
		}
	} else {
		l.Println("No changes detected in working tree.")
	}

	if err := git.CreateTag(ctx, repoRoot, version, message, forceTag); err != nil {
		return fmt.Errorf("create tag %s: %w", version, err)
	}
	return nil
}

// PushSource pushes the source repo's branch and tags to origin.
func PushSource(ctx context.Context, repoRoot string) error {
	if err := git.Push(ctx, repoRoot); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}
	if err := git.PushTags(ctx, repoRoot); err != nil {
		return fmt.Errorf("push --tags failed: %w", err)
	}
	return nil
}

// PublishPublic commits everything under the public releases root and
// pushes. A no-op commit (nothing changed) is tolerated.
func PublishPublic(ctx context.Context, publicRoot, message string) error {
	if err := git.Run(ctx, publicRoot, "add", "."); err != nil {
		return fmt.Errorf("stage public releases repo: %w", err)
	}
	if _, err := git.Commit(ctx, publicRoot, message); err != nil {
		return fmt.Errorf("commit public releases repo: %w", err)
	}
	if err := git.Push(ctx, publicRoot); err != nil {
		return fmt.Errorf("push public releases repo: %w", err)
	}
	return nil
}
