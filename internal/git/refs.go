package git

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Refs maps a fully qualified ref name to the object hash it points at.
type Refs map[string]string

// LsRemote lists the refs of a remote repository. Symbolic HEAD and peeled
// tag entries (^{}) are skipped so two mirrors of the same repo compare
// equal.
func LsRemote(ctx context.Context, url string) (Refs, error) {
	out, err := outputGit(ctx, "", "ls-remote", url)
	if err != nil {
		return nil, fmt.Errorf("ls-remote %s: %w", url, err)
	}
	return ParseRefs(string(out)), nil
}

// ParseRefs parses `git ls-remote` output into a Refs map.
func ParseRefs(out string) Refs {
	refs := make(Refs)
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		hash, name := fields[0], fields[1]
		if name == "HEAD" || strings.HasSuffix(name, "^{}") {
			continue
		}
		refs[name] = hash
	}
	return refs
}

// RefDiff is the result of comparing two ref sets.
type RefDiff struct {
	Missing  []string // present in source, absent in target
	Changed  []string // present in both, different hash
	Extra    []string // present in target, absent in source
	SrcCount int
	DstCount int
}

// InSync reports whether the two ref sets matched exactly.
func (d RefDiff) InSync() bool {
	return len(d.Missing) == 0 && len(d.Changed) == 0 && len(d.Extra) == 0
}

// CompareRefs diffs the source refs against the target refs.
func CompareRefs(src, dst Refs) RefDiff {
	diff := RefDiff{SrcCount: len(src), DstCount: len(dst)}
	for name, hash := range src {
		dstHash, ok := dst[name]
		switch {
		case !ok:
			diff.Missing = append(diff.Missing, name)
		case dstHash != hash:
			diff.Changed = append(diff.Changed, name)
		}
	}
	for name := range dst {
		if _, ok := src[name]; !ok {
			diff.Extra = append(diff.Extra, name)
		}
	}
	sort.Strings(diff.Missing)
	sort.Strings(diff.Changed)
	sort.Strings(diff.Extra)
	return diff
}
