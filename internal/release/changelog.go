package release

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bask185/forgeport/internal/git"
)

// ChangelogName is the filename the changelog is written to.
const ChangelogName = "CHANGELOG.txt"

// BuildChangelog generates the release changelog from annotated tag history,
// newest release first. Each section lists the non-merge commit subjects
// since the previous release.
func BuildChangelog(ctx context.Context, dir string) (string, error) {
	tags, err := git.SemverTags(ctx, dir)
	if err != nil {
		return "", fmt.Errorf("list tags: %w", err)
	}
	if len(tags) == 0 {
		return "No tags found.\n", nil
	}

	var sections []string
	for i, tag := range tags {
		prev := ""
		if i+1 < len(tags) {
			prev = tags[i+1]
		}

		subjects, err := git.SubjectsBetween(ctx, dir, prev, tag)
		if err != nil {
			return "", fmt.Errorf("log %s: %w", tag, err)
		}

		date, err := git.TagDate(ctx, dir, tag)
		if err != nil || date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}

		lines := []string{fmt.Sprintf("## %s — %s", tag, date)}
		for _, subject := range subjects {
			lines = append(lines, "- "+subject)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n") + "\n", nil
}
