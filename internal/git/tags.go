package git

import (
	"context"
	"regexp"
	"strings"
)

// semverTagRe matches release tags like v1.2.3.
var semverTagRe = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// IsSemverTag reports whether tag has the v1.2.3 form used for releases.
func IsSemverTag(tag string) bool {
	return semverTagRe.MatchString(tag)
}

// TagExists returns true if refs/tags/<tag> exists in dir.
func TagExists(ctx context.Context, dir, tag string) bool {
	err := runGit(ctx, dir, "rev-parse", "-q", "--verify", "refs/tags/"+tag)
	return err == nil
}

// CreateTag creates an annotated tag. With force, an existing tag is
// replaced locally.
func CreateTag(ctx context.Context, dir, tag, message string, force bool) error {
	args := []string{"tag"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, "-a", tag, "-m", message)
	return runGit(ctx, dir, args...)
}

// SemverTags returns release tags in dir sorted by creator date, newest
// first. Non-release tags are filtered out.
func SemverTags(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "tag", "--sort=-creatordate")
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, line := range strings.Split(string(out), "\n") {
		tag := strings.TrimSpace(line)
		if tag != "" && IsSemverTag(tag) {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// TagDate returns the commit date (YYYY-MM-DD) of the commit a tag points at.
func TagDate(ctx context.Context, dir, tag string) (string, error) {
	out, err := outputGit(ctx, dir, "log", "-1", "--format=%ad", "--date=short", tag)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// SubjectsBetween returns the non-merge commit subjects in the range
// (from, to]. With an empty from, the full history up to to is used.
func SubjectsBetween(ctx context.Context, dir, from, to string) ([]string, error) {
	rev := to
	if from != "" {
		rev = from + ".." + to
	}
	out, err := outputGit(ctx, dir, "log", "--no-merges", "--pretty=format:%s", rev)
	if err != nil {
		return nil, err
	}
	var subjects []string
	for _, line := range strings.Split(string(out), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			subjects = append(subjects, s)
		}
	}
	return subjects, nil
}
