package migrate

import (
	"context"

	"github.com/bask185/forgeport/internal/git"
	"github.com/bask185/forgeport/internal/github"
)

// Verify compares the ref sets of the forge source and the GitHub repo.
// Both sides are listed with `git ls-remote`, so whatever credentials work
// for fetching are reused.
func Verify(ctx context.Context, sourceURL, fullName string) (git.RefDiff, error) {
	src, err := git.LsRemote(ctx, sourceURL)
	if err != nil {
		return git.RefDiff{}, err
	}
	dst, err := git.LsRemote(ctx, github.RepoURL(fullName)+".git")
	if err != nil {
		return git.RefDiff{}, err
	}
	return git.CompareRefs(src, dst), nil
}
